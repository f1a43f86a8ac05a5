package weather

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

// readings decodes body and reads each configured JSONPath. Temperature must
// resolve; the other readings are left zero when their path is empty.
func readings(body []byte, f domain.WeatherFields) (domain.Weather, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.Weather{}, fmt.Errorf("decode response: %w", err)
	}

	var w domain.Weather
	var err error

	if w.TemperatureC, err = number(doc, "temperature", f.Temperature); err != nil {
		return domain.Weather{}, err
	}
	if f.WindSpeed != "" {
		if w.WindSpeedKmh, err = number(doc, "wind_speed", f.WindSpeed); err != nil {
			return domain.Weather{}, err
		}
	}
	if f.Code != "" {
		code, err := number(doc, "code", f.Code)
		if err != nil {
			return domain.Weather{}, err
		}
		w.Code = int(code)
	}
	if f.Time != "" {
		v, err := lookup(doc, "time", f.Time)
		if err != nil {
			return domain.Weather{}, err
		}
		w.ObservedAt = fmt.Sprint(v)
	}
	return w, nil
}

func lookup(doc any, name, expr string) (any, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%s: empty jsonpath expression", name)
	}
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", name, expr, err)
	}
	// Wildcards and filters yield a list; take it only when unambiguous.
	if arr, ok := v.([]any); ok {
		if len(arr) != 1 {
			return nil, fmt.Errorf("%s (%s): expected one value, got %d", name, expr, len(arr))
		}
		v = arr[0]
	}
	if v == nil {
		return nil, fmt.Errorf("%s (%s): no value found", name, expr)
	}
	return v, nil
}

func number(doc any, name, expr string) (float64, error) {
	v, err := lookup(doc, name, expr)
	if err != nil {
		return 0, err
	}
	n, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%s (%s): not a number: %v", name, expr, v)
	}
	return n, nil
}
