package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

// logRecord is a lager line with an added RFC3339 log_time.
type logRecord struct {
	lager.LogFormat
	LogTime string `json:"log_time"`
}

func newLogRecord(log lager.LogFormat) logRecord {
	seconds, err := strconv.ParseFloat(log.Timestamp, 64)
	if err != nil {
		seconds = 0
	}
	whole, frac := math.Modf(seconds)
	return logRecord{
		LogFormat: log,
		LogTime:   time.Unix(int64(whole), int64(frac*1e9)).UTC().Format(time.RFC3339),
	}
}

func (r logRecord) toJSON() []byte {
	content, err := json.Marshal(r)
	if err == nil {
		return content
	}
	var unsupported *json.UnsupportedTypeError
	var marshalErr *json.MarshalerError
	if errors.As(err, &unsupported) || errors.As(err, &marshalErr) {
		r.Data = lager.Data{"lager serialisation error": err.Error(), "data_dump": fmt.Sprintf("%#v", r.Data)}
		if content, err = json.Marshal(r); err == nil {
			return content
		}
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s", err.Error())
	return []byte("{}")
}

type redactingSink struct {
	writer      io.Writer
	minLogLevel lager.LogLevel
	lock        sync.Mutex
	redacter    *Redacter
}

// NewRedactingSink writes one redacted JSON object per line.
func NewRedactingSink(writer io.Writer, minLogLevel lager.LogLevel, redacter *Redacter) lager.Sink {
	return &redactingSink{
		writer:      writer,
		minLogLevel: minLogLevel,
		redacter:    redacter,
	}
}

func (sink *redactingSink) Log(log lager.LogFormat) {
	if log.LogLevel < sink.minLogLevel {
		return
	}
	line := append(sink.redacter.Redact(newLogRecord(log).toJSON()), '\n')

	sink.lock.Lock()
	defer sink.lock.Unlock()
	_, _ = sink.writer.Write(line)
}

type textSink struct {
	logger   *slog.Logger
	redacter *Redacter
}

// NewTextSink writes logfmt-style lines for local runs. Data is redacted the
// same way as in the JSON sink and printed in key order.
func NewTextSink(writer io.Writer, minLogLevel lager.LogLevel, redacter *Redacter) lager.Sink {
	opts := &slog.HandlerOptions{
		Level: toSlogLevel(minLogLevel),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().UTC().Format(time.RFC3339))
			}
			return a
		},
	}
	return &textSink{
		logger:   slog.New(slog.NewTextHandler(writer, opts)),
		redacter: redacter,
	}
}

func toSlogLevel(l lager.LogLevel) slog.Level {
	switch l {
	case lager.DEBUG:
		return slog.LevelDebug
	case lager.ERROR, lager.FATAL:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (sink *textSink) Log(log lager.LogFormat) {
	var attrs []slog.Attr
	if log.Source != "" {
		attrs = append(attrs, slog.String("source", log.Source))
	}
	data := sink.redacter.RedactData(log.Data)
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, data[key]))
	}
	sink.logger.LogAttrs(context.Background(), toSlogLevel(log.LogLevel), log.Message, attrs...)
}
