package predict

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/heartstage/internal/features"
)

// LoggingPredictor is a decorator that logs every prediction.
type LoggingPredictor struct {
	inner  Predictor
	logger *zap.Logger
}

// WithLogging wraps a Predictor with structured logging. Inputs are logged
// at debug level only.
func WithLogging(p Predictor, logger *zap.Logger) Predictor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingPredictor{inner: p, logger: logger}
}

func (l *LoggingPredictor) Predict(v features.Vector) (Result, error) {
	start := time.Now()
	requestID := uuid.NewString()

	res, err := l.inner.Predict(v)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.logger.Warn("prediction failed", append(fields, zap.Error(err))...)
	} else {
		l.logger.Info("prediction",
			append(fields, zap.Int("label", res.Label), zap.String("color", res.Color))...)
	}
	if ce := l.logger.Check(zap.DebugLevel, "prediction input"); ce != nil {
		ce.Write(zap.String("request_id", requestID), zap.Float64s("vector", v[:]))
	}

	return res, err
}
