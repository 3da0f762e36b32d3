package detector

import (
	"reflect"
	"strings"
	"testing"
)

const (
	sensationalText = "BREAKING!!! SHOCKING secret the government doesn't want you to know. "
	citedText       = "According to a report published by the city council on Tuesday, the new public library will open next spring, offering expanded weekend hours and free community programs for local residents."
)

func TestDetectSuspiciousPatterns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "sensational headline",
			text: strings.Repeat(sensationalText, 2),
			want: []string{IndicatorSensational, IndicatorUrgency, IndicatorPunctuation, IndicatorNoSources},
		},
		{
			name: "cited and calm",
			text: citedText,
			want: []string{},
		},
		{
			name: "conspiracy and medical",
			text: "Wake up! Big Pharma doesnt want you to see this miracle cure. Source: a friend.",
			want: []string{IndicatorConspiracy, IndicatorMedical},
		},
		{
			name: "question marks",
			text: "Is it real??? according to nobody",
			want: []string{IndicatorPunctuation},
		},
		{
			name: "two exclamation marks are fine",
			text: "Great match!! according to the league",
			want: []string{},
		},
		{
			name: "six distinct capitalized words",
			text: "NASA FBI CIA NSA USA NATO officials met, according to reports.",
			want: []string{IndicatorCapitals},
		},
		{
			name: "repeated capitalized word counts once",
			text: "NASA NASA NASA NASA NASA NASA NASA, according to reports.",
			want: []string{},
		},
		{
			name: "empty text lacks sources",
			text: "",
			want: []string{IndicatorNoSources},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectSuspiciousPatterns(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectSuspiciousPatterns() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectSuspiciousPatterns_Idempotent(t *testing.T) {
	text := strings.Repeat(sensationalText, 3)
	first := DetectSuspiciousPatterns(text)
	second := DetectSuspiciousPatterns(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("detector is not deterministic: %v vs %v", first, second)
	}
}

func TestDetectSuspiciousPatterns_CaseInsensitive(t *testing.T) {
	got := DetectSuspiciousPatterns("The Deep State is real, according to my uncle.")
	want := []string{IndicatorConspiracy}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
