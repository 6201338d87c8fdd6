package log

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// JSONFormatter formats log entries as parsable JSON, encoding through
// go-json.
type JSONFormatter struct {
	// TimestampFormat sets the format used for marshaling timestamps, in
	// time.Format layout. Empty means RFC3339.
	TimestampFormat string

	// DisableTimestamp drops the timestamp from the output.
	DisableTimestamp bool
}

// Format renders a single log entry.
func (f *JSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data := make(logrus.Fields, len(entry.Data)+3)
	for k, v := range entry.Data {
		switch v := v.(type) {
		case error:
			// Errors are ignored by encoding/json, so flatten them here.
			data[k] = v.Error()
		default:
			data[k] = v
		}
	}

	if !f.DisableTimestamp {
		timestampFormat := f.TimestampFormat
		if timestampFormat == "" {
			timestampFormat = time.RFC3339
		}
		data[logrus.FieldKeyTime] = entry.Time.Format(timestampFormat)
	}
	data[logrus.FieldKeyMsg] = entry.Message
	data[logrus.FieldKeyLevel] = entry.Level.String()

	var w bytes.Buffer
	enc := json.NewEncoder(&w)
	err := enc.Encode(data)
	return w.Bytes(), err
}
