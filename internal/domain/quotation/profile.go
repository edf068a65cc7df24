package quotation

// CompanyProfile is the letterhead block on the first page of a rendered
// quotation. Static configuration, loaded once per render call.
type CompanyProfile struct {
	Name          string
	Address       string
	Country       string
	Phone         string
	Email         string
	Website       string
	LicenseNumber string
	VATNumber     string
}

// Signer identifies who signs the quotation.
type Signer struct {
	Name  string
	Title string
}

// Terms is the legal/commercial text rendered on page two.
type Terms struct {
	Payment      []string
	Installation []string
	Warranty     []string
	Validity     string
	Exclusions   string
}

func DefaultCompany() CompanyProfile {
	return CompanyProfile{
		Name:          "Zuccess",
		Address:       "Al Khobar",
		Country:       "Kingdom of Saudi Arabia",
		Phone:         "+966 56 119 1797",
		Email:         "info@zuccess.net",
		Website:       "www.zuccess.ai",
		LicenseNumber: "7042632393",
		VATNumber:     "312668821500003",
	}
}

func DefaultSigner() Signer {
	return Signer{Name: "Anas Salem", Title: "Operation Manager"}
}

func DefaultTerms() Terms {
	return Terms{
		Payment: []string{
			"Initial Payment: 50% of the total amount to be paid upon signing the contract.",
			"Final Payment: The remaining 50% to be paid upon completion of delivery, installation, and successful testing of all devices.",
		},
		Installation: []string{
			"Installation Start: Installation works will commence 25 days after contract signing.",
			"The expected installation and configuration period is 3 to 7 working days, depending on project size and site conditions.",
		},
		Warranty: []string{
			"All devices include a 24-month manufacturer warranty.",
			"Installation and programming works are covered by a 3-month service warranty.",
			"Any additional requests or upgrades outside the listed scope will be quoted separately.",
		},
		Validity:   "This quotation is valid for 30 days from the date of issue.",
		Exclusions: "The extension or provision of neutral lines is the responsibility of the client's appointed electrical technician. If this work is carried out by our team, it will be considered an additional item and subject to separate charges as per the approved rates.",
	}
}

// Merged fills empty fields from the defaults, matching the per-section
// override behavior of the terms template.
func (t Terms) Merged() Terms {
	def := DefaultTerms()
	if len(t.Payment) == 0 {
		t.Payment = def.Payment
	}
	if len(t.Installation) == 0 {
		t.Installation = def.Installation
	}
	if len(t.Warranty) == 0 {
		t.Warranty = def.Warranty
	}
	if t.Validity == "" {
		t.Validity = def.Validity
	}
	if t.Exclusions == "" {
		t.Exclusions = def.Exclusions
	}
	return t
}
