package common

import (
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogger writes to w, which is stderr unless a caller says otherwise;
// stdout is reserved for generator output.
func SetupLogger(level string, w io.Writer) (*zap.Logger, *zap.SugaredLogger) {
	if w == nil {
		w = os.Stderr
	}
	al := zap.NewAtomicLevel()
	var opts []zap.Option
	switch strings.ToUpper(level) {
	case "DEV":
		al.SetLevel(zap.DebugLevel)
		opts = append(opts, zap.AddCaller())
	case "DEBUG":
		al.SetLevel(zap.DebugLevel)
	case "INFO":
		al.SetLevel(zap.InfoLevel)
	case "ERROR":
		al.SetLevel(zap.ErrorLevel)
	case "WARN":
		al.SetLevel(zap.WarnLevel)
	case "FATAL":
		al.SetLevel(zap.FatalLevel)
	default:
		al.SetLevel(zap.InfoLevel)
	}
	ec := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), al)
	logger := zap.New(core)
	zap.ReplaceGlobals(logger.WithOptions(opts...))
	return logger, logger.Sugar()
}

func CheckError(err error) {
	if err != nil {
		zap.S().Fatalf("Fatal error: %s", err.Error())
	}
}

// Hex renders b as lowercase hex with a 0x prefix, "0x" for empty input.
func Hex(b []byte) string {
	return hexutil.Encode(b)
}

// BriefHash shortens a 0x hex string for log lines.
func BriefHash(h string) string {
	h = strings.TrimPrefix(h, "0x")
	if len(h) <= 16 {
		return h
	}
	return h[:8] + ".." + h[len(h)-8:]
}

// FromHex is the inverse of Hex.
func FromHex(s string) ([]byte, error) {
	return hexutil.Decode(s)
}
