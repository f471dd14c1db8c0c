package invoice

import (
	"github.com/kishankathi24/SpeedyBill/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.session",
	fx.Provide(service.NewSession),
)
