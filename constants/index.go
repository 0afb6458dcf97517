package constants

// Account roles
const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_CAPTAIN = "CAPTAIN"
	ROLE_WAITER  = "WAITER"
	ROLE_KITCHEN = "KITCHEN"
	ROLE_QSR     = "QSR"
	ROLE_HOTEL   = "HOTEL"
)

var ROLE = []string{ROLE_ADMIN, ROLE_MANAGER, ROLE_CAPTAIN, ROLE_WAITER, ROLE_KITCHEN, ROLE_QSR, ROLE_HOTEL}

// Order lifecycle
const (
	ORDER_SAVE      = "Save"
	ORDER_KOT       = "KOT"
	ORDER_PAID      = "Paid"
	ORDER_CANCELLED = "Cancelled"
)

var ORDER_STATUS = []string{ORDER_SAVE, ORDER_KOT, ORDER_PAID, ORDER_CANCELLED}

const (
	ORDER_TYPE_DINE_IN  = "Dine In"
	ORDER_TYPE_TAKEAWAY = "Takeaway"
	ORDER_TYPE_DELIVERY = "Delivery"
)

var ORDER_TYPE = []string{ORDER_TYPE_DINE_IN, ORDER_TYPE_TAKEAWAY, ORDER_TYPE_DELIVERY}

var ORDER_SOURCE = []string{"Manager", "Captain", "Waiter", "QSR"}

// Dish line status, one-way Preparing -> Completed
const (
	DISH_PREPARING = "Preparing"
	DISH_COMPLETED = "Completed"
)

// Attendance
const (
	ATTENDANCE_PRESENT = "present"
	ATTENDANCE_ABSENT  = "absent"
)

// Booking lifecycle
const (
	BOOKING_BOOKED      = "Booked"
	BOOKING_CHECKED_IN  = "Checked In"
	BOOKING_CHECKED_OUT = "Checked Out"
	BOOKING_CANCELLED   = "Cancelled"
)

var BOOKING_STATUS = []string{BOOKING_BOOKED, BOOKING_CHECKED_IN, BOOKING_CHECKED_OUT, BOOKING_CANCELLED}

// Room availability
const (
	ROOM_AVAILABLE = "Available"
	ROOM_OCCUPIED  = "Occupied"
)

// Charge kinds
const (
	CHARGE_PERCENT = "percent"
	CHARGE_FIXED   = "fixed"
)

var CHARGE_TYPE = []string{CHARGE_PERCENT, CHARGE_FIXED}

// Redis channel carrying KOT invalidation events
const KOT_CHANNEL = "kot:update"

// Messages
const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Create failed"
	ERROR_UPDATE               = "Update failed"
	ERROR_DELETE               = "Delete failed"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	NOT_ADMIN                  = "Admin permission required"
	NOT_FOUND                  = "Not found"

	TABLE_EXISTS          = "Table number already exists in this area"
	TABLE_OCCUPIED        = "Table already has an active order"
	TABLE_HAS_OPEN_ORDER  = "Table cannot be removed while it has an active order"
	ORDER_NOT_FOUND       = "Order not found"
	INVALID_TRANSITION    = "Invalid status transition"
	ORDER_ITEMS_EMPTY     = "Order has no dishes to send to the kitchen"
	DISH_EXISTS           = "Dish already exists in this category"
	CATEGORY_EXISTS       = "Category already exists"
	STAFF_CODE_EXISTS     = "Staff id already exists"
	ALREADY_CHECKED_IN    = "Already checked in for this date"
	NOT_CHECKED_IN        = "No open check-in for this date"
	DUPLICATE_ATTENDANCE  = "Attendance entry already exists for this date"
	FACE_NO_MATCH         = "No matching staff face"
	ROOM_EXISTS           = "Room number already exists"
	ROOM_UNAVAILABLE      = "Room already booked for these dates"
	CHARGE_EXISTS         = "Charge already exists"
	CUSTOMER_PHONE_EXISTS = "Customer phone already registered"
	WRONG_CREDENTIALS     = "Wrong username or password"
	OTP_INVALID           = "OTP code invalid or expired"
)
