package app

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/internal/store"
)

// newStorage picks the storage backend: gorm when postgres is configured,
// otherwise the in-memory store.
func newStorage[T store.Record[T]](db *gorm.DB, newFn func() T) store.Storage[T] {
	if db != nil {
		return store.NewGorm(db, newFn)
	}
	return store.NewMemory[T]()
}

var storesModule = fx.Options(
	fx.Provide(func(db *gorm.DB) store.Storage[*models.User] {
		return newStorage(db, func() *models.User { return &models.User{} })
	}),
	fx.Provide(func(db *gorm.DB) store.Storage[*models.MemberCardPlan] {
		return newStorage(db, func() *models.MemberCardPlan { return &models.MemberCardPlan{} })
	}),
	fx.Provide(func(db *gorm.DB) store.Storage[*models.MemberCard] {
		return newStorage(db, func() *models.MemberCard { return &models.MemberCard{} })
	}),
	fx.Provide(func(db *gorm.DB) store.Storage[*models.Order] {
		return newStorage(db, func() *models.Order { return &models.Order{} })
	}),
	fx.Provide(func(db *gorm.DB) store.Storage[*models.Timeslot] {
		return newStorage(db, func() *models.Timeslot { return &models.Timeslot{} })
	}),
	fx.Provide(func(db *gorm.DB) store.Storage[*models.Booking] {
		return newStorage(db, func() *models.Booking { return &models.Booking{} })
	}),
)
