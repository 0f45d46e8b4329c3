package reconcile

import (
	"context"

	"workforce-manager/feature/timesheet/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deleteTruckingChildren removes every grandchild of a trucking log.
func deleteTruckingChildren(ctx context.Context, tx *gorm.DB, truckingLogID string) error {
	db := tx.WithContext(ctx)
	for _, model := range []any{
		&models.EquipmentHauled{},
		&models.Material{},
		&models.RefuelLog{},
		&models.StateMileage{},
	} {
		if err := db.Where("trucking_log_id = ?", truckingLogID).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// createTruckingChildren inserts the grandchildren of s with fresh ids.
func createTruckingChildren(ctx context.Context, tx *gorm.DB, s models.TruckingLogSnapshot) error {
	db := tx.WithContext(ctx)

	if len(s.EquipmentHauled) > 0 {
		rows := make([]models.EquipmentHauled, 0, len(s.EquipmentHauled))
		for _, e := range s.EquipmentHauled {
			rows = append(rows, models.EquipmentHauled{
				ID:            uuid.NewString(),
				TruckingLogID: s.ID,
				EquipmentID:   e.EquipmentID,
				JobsiteID:     e.JobsiteID,
			})
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(s.Materials) > 0 {
		rows := make([]models.Material, 0, len(s.Materials))
		for _, m := range s.Materials {
			rows = append(rows, models.Material{
				ID:                 uuid.NewString(),
				TruckingLogID:      s.ID,
				Name:               m.Name,
				Quantity:           m.Quantity,
				Unit:               m.Unit,
				LocationOfMaterial: m.LocationOfMaterial,
			})
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(s.RefuelLogs) > 0 {
		parent := s.ID
		rows := make([]models.RefuelLog, 0, len(s.RefuelLogs))
		for _, r := range s.RefuelLogs {
			rows = append(rows, models.RefuelLog{
				ID:              uuid.NewString(),
				TruckingLogID:   &parent,
				GallonsRefueled: r.GallonsRefueled,
				MilesAtFueling:  r.MilesAtFueling,
			})
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(s.StateMileages) > 0 {
		rows := make([]models.StateMileage, 0, len(s.StateMileages))
		for _, sm := range s.StateMileages {
			rows = append(rows, models.StateMileage{
				ID:               uuid.NewString(),
				TruckingLogID:    s.ID,
				State:            sm.State,
				StateLineMileage: sm.StateLineMileage,
			})
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}

	return nil
}

// deleteTascoChildren removes every refuel log of a tasco log.
func deleteTascoChildren(ctx context.Context, tx *gorm.DB, tascoLogID string) error {
	return tx.WithContext(ctx).Where("tasco_log_id = ?", tascoLogID).Delete(&models.RefuelLog{}).Error
}

// createTascoChildren inserts the refuel logs of s with fresh ids.
func createTascoChildren(ctx context.Context, tx *gorm.DB, s models.TascoLogSnapshot) error {
	if len(s.RefuelLogs) == 0 {
		return nil
	}
	parent := s.ID
	rows := make([]models.RefuelLog, 0, len(s.RefuelLogs))
	for _, r := range s.RefuelLogs {
		rows = append(rows, models.RefuelLog{
			ID:              uuid.NewString(),
			TascoLogID:      &parent,
			GallonsRefueled: r.GallonsRefueled,
			MilesAtFueling:  r.MilesAtFueling,
		})
	}
	return tx.WithContext(ctx).Create(&rows).Error
}
