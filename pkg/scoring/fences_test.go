package scoring

import "testing"

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain json untouched",
			raw:  `{"score": 80}`,
			want: `{"score": 80}`,
		},
		{
			name: "json fence",
			raw:  "```json\n{\"score\": 80}\n```",
			want: `{"score": 80}`,
		},
		{
			name: "bare fence",
			raw:  "```\n{\"score\": 80}\n```",
			want: `{"score": 80}`,
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n```json\n{}\n```  \n",
			want: `{}`,
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(StripJSONFences([]byte(tt.raw)))
			if got != tt.want {
				t.Errorf("StripJSONFences(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
