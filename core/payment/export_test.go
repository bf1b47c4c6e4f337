package payment

import (
	"time"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

func (svc *Service) SetNowFunc(f core.NowFunc) { svc.nowFunc = f }

func (svc *Service) SetReceiptGen(f func(time.Time) (string, error)) { svc.receiptGen = f }
