package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{name: "Valid json format", format: "json", expectErr: false},
		{name: "Valid yaml format", format: "yaml", expectErr: false},
		{name: "Invalid format", format: "csv", expectErr: true},
		{name: "Empty format", format: "", expectErr: true},
		{name: "Case sensitive - uppercase", format: "JSON", expectErr: true},
		{name: "Case sensitive - mixed case", format: "Yaml", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("Expected error for format %q, but got none", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Expected no error for format %q, but got: %v", tt.format, err)
			}
		})
	}
}

func TestValidateAQI(t *testing.T) {
	tests := []struct {
		name      string
		aqi       int
		expectErr bool
	}{
		{name: "Lower bound", aqi: 0},
		{name: "Typical", aqi: 150},
		{name: "Upper bound", aqi: 500},
		{name: "Negative", aqi: -1, expectErr: true},
		{name: "Above scale", aqi: 501, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAQI(tt.aqi)
			if tt.expectErr != (err != nil) {
				t.Errorf("ValidateAQI(%d) error = %v, expectErr %v", tt.aqi, err, tt.expectErr)
			}
		})
	}
}

func TestValidatePriorityFactors(t *testing.T) {
	tests := []struct {
		name      string
		factors   map[string]float64
		expectErr bool
	}{
		{name: "Nil map", factors: nil},
		{name: "Zero weight", factors: map[string]float64{"green_wall": 0}},
		{name: "Boosted weight", factors: map[string]float64{"dust_suppression": 2.5}},
		{name: "Negative weight", factors: map[string]float64{"green_wall": 1, "air_purifier": -0.1}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePriorityFactors(tt.factors)
			if tt.expectErr != (err != nil) {
				t.Errorf("ValidatePriorityFactors(%v) error = %v, expectErr %v", tt.factors, err, tt.expectErr)
			}
		})
	}
}
