package scraper

// Source names one lab's public rate page.
type Source struct {
	Lab string
	URL string
}

// DefaultSources lists the rate pages for the labs the app compares.
// The order here is the order refresh runs log in.
func DefaultSources() []Source {
	return []Source{
		{Lab: "Mughal Labs", URL: "https://mughallabs.com/lab-test-rates/"},
		{Lab: "Shaukat Khanum", URL: "https://shaukatkhanum.org.pk/pathology-test-panels/"},
		{Lab: "IDC", URL: "https://idc.net.pk/test-prices/"},
		{Lab: "Chughtai Lab", URL: "https://chughtailab.com/test-menu/"},
		{Lab: "Al-Noor", URL: "https://alnoordiagnostic.com/discount-page/"},
	}
}
