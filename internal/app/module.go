package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/lingoport/portal/internal/app/api/server"
	"github.com/lingoport/portal/internal/app/service/auth"
	"github.com/lingoport/portal/internal/app/service/booking"
	"github.com/lingoport/portal/internal/app/service/catalog"
	"github.com/lingoport/portal/internal/app/service/order"
	"github.com/lingoport/portal/internal/platform/db"
	"github.com/lingoport/portal/pkg/config"
	"github.com/lingoport/portal/pkg/logger"
	"github.com/lingoport/portal/pkg/metrics"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	metrics.Module,
	db.Module,
	storesModule,
	server.Module,
	auth.Module,
	catalog.Module,
	order.Module,
	booking.Module,
)
