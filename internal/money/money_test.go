package money

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{
			name:  "plain integer",
			input: "1500",
			want:  150000,
		},
		{
			name:  "dot separator",
			input: "12.34",
			want:  1234,
		},
		{
			name:  "comma separator",
			input: "12,34",
			want:  1234,
		},
		{
			name:  "single decimal digit",
			input: "7,5",
			want:  750,
		},
		{
			name:  "zero allowed",
			input: "0",
			want:  0,
		},
		{
			name:  "leading decimal point",
			input: ",50",
			want:  50,
		},
		{
			name:  "third decimal rounds up",
			input: "1,005",
			want:  101,
		},
		{
			name:  "third decimal rounds down",
			input: "1,004",
			want:  100,
		},
		{
			name:  "surrounding whitespace",
			input: "  42,00  ",
			want:  4200,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "negative rejected",
			input:   "-5",
			wantErr: true,
		},
		{
			name:    "explicit plus rejected",
			input:   "+5",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "two separators",
			input:   "1.234,56",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got.Cents() != tt.want {
				t.Errorf("Parse(%q) = %d cents, want %d", tt.input, got.Cents(), tt.want)
			}
		})
	}
}

func TestParsePositive(t *testing.T) {
	if _, err := ParsePositive("0"); err == nil {
		t.Error("ParsePositive(\"0\") expected error, got nil")
	}
	if _, err := ParsePositive("0,00"); err == nil {
		t.Error("ParsePositive(\"0,00\") expected error, got nil")
	}

	got, err := ParsePositive("10,50")
	if err != nil {
		t.Fatalf("ParsePositive(\"10,50\") unexpected error: %v", err)
	}
	if got.Cents() != 1050 {
		t.Errorf("ParsePositive(\"10,50\") = %d cents, want 1050", got.Cents())
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "R$ 0,00"},
		{"under one real", 99, "R$ 0,99"},
		{"thousands grouping", 123456, "R$ 1.234,56"},
		{"exact thousand", 100000, "R$ 1.000,00"},
		{"million", 123456789, "R$ 1.234.567,89"},
		{"negative", -2500, "R$ -25,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromCents(tt.cents).Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReais(t *testing.T) {
	if got := FromCents(1234).Reais(); got != 12.34 {
		t.Errorf("Reais() = %v, want 12.34", got)
	}
}
