package integrity

import (
	"testing"

	"workforce-manager/feature/timesheet/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(NewService(setupDB(t), models.Models(), nil, "", "", zap.NewNop()))

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}

func TestLoader_NoDatabase(t *testing.T) {
	feature := NewFeature(NewService(nil, nil, nil, "", "", nil))
	assert.False(t, feature.IsEnabled())
}
