package model

// Page selectors. The view router maps one of these plus the current
// session to the view that actually gets rendered.
const (
	PageHome            = "home"
	PageServices        = "services"
	PageBookAppointment = "book-appointment"
	PageAbout           = "about"
	PageContact         = "contact"
	PageLogin           = "login"
	PageSignup          = "signup"
	PageUserDashboard   = "user-dashboard"
	PageAdminDashboard  = "admin-dashboard"
)

var knownPages = map[string]bool{
	PageHome:            true,
	PageServices:        true,
	PageBookAppointment: true,
	PageAbout:           true,
	PageContact:         true,
	PageLogin:           true,
	PageSignup:          true,
	PageUserDashboard:   true,
	PageAdminDashboard:  true,
}

// KnownPage reports whether name is one of the nine page selectors.
func KnownPage(name string) bool {
	return knownPages[name]
}

// Services offered by the shop, shown on the services page and in the
// booking form.
var Services = []string{
	"Engine Repair & Diagnostics",
	"Brake Service & Repair",
	"Oil Change & Fluids",
	"Battery & Electrical",
	"Transmission Service",
	"Tire & Wheel Service",
	"A/C & Heating",
	"Computer Diagnostics",
	"Preventive Maintenance",
	"General Inspection",
}

// TimeSlots are the bookable hours of a working day.
var TimeSlots = []string{
	"8:00", "9:00", "10:00", "11:00",
	"12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

// ContactInfo is the shop's static contact card.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

var ShopContact = ContactInfo{
	Phone:   "(555) 123-6478",
	Email:   "info@losmecanics.com",
	Address: "12 Alpha Street, Parkhood, Springfield, MA 01101",
	Hours:   "Mon-Fri: 8AM-6PM, Sat: 8AM-4PM, Sun: Closed",
}
