package newsroom

import "testing"

func TestNewEventValidate(t *testing.T) {
	valid := NewEvent{
		Category:    "Cultural",
		Club:        "Dance Club",
		Title:       "Spring Fest",
		Src:         "https://cdn.example.com/poster.png",
		Description: "Annual spring festival auditions.",
		Date:        "2026-09-15",
	}

	tests := []struct {
		name    string
		mutate  func(ne *NewEvent)
		wantErr bool
	}{
		{name: "valid", mutate: func(ne *NewEvent) {}},
		{name: "no poster is fine", mutate: func(ne *NewEvent) { ne.Src = "" }},
		{name: "bad poster url", mutate: func(ne *NewEvent) { ne.Src = "not-a-url" }, wantErr: true},
		{name: "bad date", mutate: func(ne *NewEvent) { ne.Date = "15/09/2026" }, wantErr: true},
		{name: "missing title", mutate: func(ne *NewEvent) { ne.Title = "" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ne := valid
			tt.mutate(&ne)
			if err := ne.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
