package log

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// JSONFormatter renders one JSON object per log entry.
type JSONFormatter struct {
	// TimestampFormat is a time.Format layout. Empty means RFC3339.
	TimestampFormat string

	// DisableTimestamp omits the time field.
	DisableTimestamp bool
}

// Format renders a single log entry
func (f *JSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data := make(logrus.Fields, len(entry.Data)+3)
	for k, v := range entry.Data {
		switch v := v.(type) {
		case error:
			// encoding an error value directly yields {}
			data[k] = v.Error()
		default:
			data[k] = v
		}
	}

	if !f.DisableTimestamp {
		layout := f.TimestampFormat
		if layout == "" {
			layout = time.RFC3339
		}
		data[logrus.FieldKeyTime] = entry.Time.Format(layout)
	}
	data[logrus.FieldKeyMsg] = entry.Message
	data[logrus.FieldKeyLevel] = entry.Level.String()

	var w bytes.Buffer
	err := json.NewEncoder(&w).Encode(data)
	return w.Bytes(), err
}
