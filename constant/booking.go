package constant

// BookingStatusPending is the only status this system ever writes. There is
// no transition to delivered or cancelled.
const BookingStatusPending = "Pending"

// DeliveryOffsetDays is the fixed estimate between booking and delivery.
const DeliveryOffsetDays = 3

// DateLayout is the wire format for booking and delivery dates.
const DateLayout = "2006-01-02"

var CylinderTypes = map[string]bool{
	"5kg":    true,
	"14.2kg": true,
	"19kg":   true,
}

var PaymentMethods = map[string]bool{
	"cash": true,
	"card": true,
}
