package market

import "testing"

func TestNewListingValidate(t *testing.T) {
	valid := NewListing{
		Title:          "Scientific calculator",
		Price:          450,
		Category:       "Electronics",
		Description:    "Casio fx-991EX, lightly used.",
		WhatsappNumber: "919876543210",
	}

	tests := []struct {
		name    string
		mutate  func(nl *NewListing)
		wantErr bool
	}{
		{name: "valid", mutate: func(nl *NewListing) {}},
		{name: "free is fine", mutate: func(nl *NewListing) { nl.Price = 0 }},
		{name: "negative price", mutate: func(nl *NewListing) { nl.Price = -1 }, wantErr: true},
		{name: "whatsapp without country code", mutate: func(nl *NewListing) { nl.WhatsappNumber = "9876543210" }, wantErr: true},
		{name: "missing category", mutate: func(nl *NewListing) { nl.Category = "" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nl := valid
			tt.mutate(&nl)
			if err := nl.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
