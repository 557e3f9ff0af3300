package sensor

import (
	"colorviz/internal/model"
	"colorviz/internal/vision"
)

// Sensor performs one blocking color acquisition.
type Sensor interface {
	Read() (model.RawSample, error)
}

// AcquirerFor adapts s to the pipeline's acquisition callback.
func AcquirerFor(s Sensor) vision.Acquirer {
	return s.Read
}
