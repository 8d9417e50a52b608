// Inspiration came from a project known as zap-pretty: https://github.com/maoueh/zap-pretty
// Instead of a cli tool however, this is a native encoder implementing the zapcore.Encoder interface.
// Context and fields are rendered by zap's own JSON encoder; only the entry header is colorized here.

package zappretty

import (
	"fmt"
	"sync"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/bag/safepool"
)

const (
	// EncodingName is the name the encoder is registered under with zap.
	EncodingName = "cli"

	timeFormat = "2006-01-02 15:04:05 MST"
)

var (
	registerOnce sync.Once
	registerErr  error
	cliPool      = safepool.NewPool(func() *cliEncoder { return &cliEncoder{} })
	bufPool      = buffer.NewPool()
	levelColor   = map[zapcore.Level]color.Attribute{
		zapcore.DebugLevel:  color.FgBlue,
		zapcore.InfoLevel:   color.FgGreen,
		zapcore.WarnLevel:   color.FgYellow,
		zapcore.ErrorLevel:  color.FgRed,
		zapcore.DPanicLevel: color.FgRed,
		zapcore.PanicLevel:  color.FgRed,
		zapcore.FatalLevel:  color.FgRed,
	}
)

// Register makes the encoder available to zap.Config under EncodingName. It
// is safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		registerErr = zap.RegisterEncoder(EncodingName, func(cfg zapcore.EncoderConfig) (zapcore.Encoder, error) {
			return NewCLIEncoder(cfg), nil
		})
	})

	return registerErr
}

type cliEncoder struct {
	zapcore.Encoder

	cfg *zapcore.EncoderConfig
	buf *buffer.Buffer
}

func NewCLIEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if cfg.SkipLineEnding {
		cfg.LineEnding = ""
	} else if cfg.LineEnding == "" {
		cfg.LineEnding = zapcore.DefaultLineEnding
	}

	return &cliEncoder{
		Encoder: zapcore.NewJSONEncoder(fieldsConfig(cfg)),
		cfg:     &cfg,
	}
}

// fieldsConfig strips every entry key so the JSON encoder only renders
// context and fields.
func fieldsConfig(cfg zapcore.EncoderConfig) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		SkipLineEnding:      true,
		EncodeTime:          cfg.EncodeTime,
		EncodeDuration:      cfg.EncodeDuration,
		NewReflectedEncoder: cfg.NewReflectedEncoder,
	}
}

func (enc *cliEncoder) Clone() zapcore.Encoder {
	return &cliEncoder{
		Encoder: enc.Encoder.Clone(),
		cfg:     enc.cfg,
	}
}

func (enc *cliEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := cliPool.Get()
	final.cfg = enc.cfg
	final.buf = bufPool.Get()

	defer func() {
		final.cfg = nil
		final.buf = nil
		cliPool.Put(final)
	}()

	if final.cfg.TimeKey != "" {
		final.encodeTimestamp(entry.Time)
	}

	if final.cfg.LevelKey != "" && final.cfg.EncodeLevel != nil {
		final.encodeLevel(entry.Level)
	}

	if entry.LoggerName != "" && final.cfg.NameKey != "" {
		final.encodeLoggerName(entry.LoggerName)
	}

	if entry.Caller.Defined && final.cfg.CallerKey != "" {
		final.encodeCaller(entry.Caller)
	}

	if final.cfg.MessageKey != "" {
		final.encodeMessage(entry.Message)
	}

	body, err := enc.Encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		final.buf.Free()
		return nil, err
	}

	// An empty JSON object means there is no context and no fields.
	if body.Len() > len("{}") {
		final.buf.AppendString(color.New(color.FgCyan).Sprint(body.String()))
	}

	body.Free()

	if entry.Stack != "" && final.cfg.StacktraceKey != "" {
		final.buf.AppendByte('\n')
		final.buf.AppendString(color.New(color.FgHiBlack).Sprint(entry.Stack))
	}

	final.buf.AppendString(final.cfg.LineEnding)

	return final.buf, nil
}

func (enc *cliEncoder) encodeTimestamp(timestamp time.Time) {
	enc.buf.AppendString(color.New(color.FgWhite).Sprintf("[%s]", timestamp.Format(timeFormat)))
	enc.buf.AppendByte(' ')
}

func (enc *cliEncoder) encodeLevel(level zapcore.Level) {
	if level == zapcore.InfoLevel || level == zapcore.WarnLevel {
		enc.buf.AppendString(color.New(levelColor[level]).Sprint(level.CapitalString() + " "))
	} else {
		enc.buf.AppendString(color.New(levelColor[level]).Sprint(level.CapitalString()))
	}
	enc.buf.AppendByte(' ')
}

func (enc *cliEncoder) encodeLoggerName(logger string) {
	enc.buf.AppendString(color.New(color.FgHiBlack).Sprint(logger))
	enc.buf.AppendByte(' ')
}

func (enc *cliEncoder) encodeCaller(caller zapcore.EntryCaller) {
	enc.buf.AppendString(color.New(color.FgHiBlack).Sprintf("(%s)", caller.TrimmedPath()))
	enc.buf.AppendByte(' ')
}

func (enc *cliEncoder) encodeMessage(message string) {
	enc.buf.AppendString(color.New(color.FgHiWhite).Sprint(message))
	enc.buf.AppendByte(' ')
}

// Options configures the logger built by New.
type Options struct {
	// Level is the minimum enabled level, e.g. "debug" or "warn". Empty means
	// info.
	Level string

	// Pretty selects the colored cli encoding instead of JSON.
	Pretty bool

	// OutputPaths defaults to stderr.
	OutputPaths []string
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	var level zapcore.Level

	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Sampling = nil

	if opts.Pretty {
		if err := Register(); err != nil {
			return nil, err
		}

		cfg.Encoding = EncodingName
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
	}

	return cfg.Build()
}
