package qrgen

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/Akaiko1/amazing-qr/internal/form"
)

func recoveryLevel(l form.Level) qrcode.RecoveryLevel {
	switch l {
	case form.LevelL:
		return qrcode.Low
	case form.LevelM:
		return qrcode.Medium
	case form.LevelQ:
		return qrcode.High
	default:
		return qrcode.Highest
	}
}

// encode builds a symbol at the requested version, stepping up until the text fits.
func encode(text string, version int, level form.Level) (*qrcode.QRCode, error) {
	var lastErr error
	for v := version; v <= form.MaxVersion; v++ {
		code, err := qrcode.NewWithForcedVersion(text, v, recoveryLevel(level))
		if err == nil {
			return code, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w (level %s): %v", ErrTooLong, level, lastErr)
}

// symbolSize is the module count along one edge of a symbol.
func symbolSize(version int) int {
	return 17 + 4*version
}

// trimQuietZone strips whatever border the encoder added around the symbol.
func trimQuietZone(bitmap [][]bool, version int) [][]bool {
	n := symbolSize(version)
	border := (len(bitmap) - n) / 2
	if border <= 0 {
		return bitmap
	}
	out := make([][]bool, n)
	for r := 0; r < n; r++ {
		out[r] = bitmap[r+border][border : border+n]
	}
	return out
}
