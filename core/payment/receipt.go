package payment

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

const (
	receiptPrefix = "RCP"
	receiptBytes  = 4
)

// NewReceiptNumber returns "RCP-<YYYYMMDD>-<8 uppercase hex chars>" for the UTC day of `at`.
func NewReceiptNumber(at time.Time) (string, error) {
	b, err := core.RandomBytes(receiptBytes)
	if err != nil {
		return "", err
	}
	return receiptPrefix + "-" + at.UTC().Format("20060102") + "-" + strings.ToUpper(hex.EncodeToString(b)), nil
}
