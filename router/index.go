package router

import (
	"restro_manager/handler"
	"restro_manager/middleware"
	"restro_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", validate.Refresh(), handler.RefreshToken)
	auth.Post("/send-otp", validate.SendOtp(), handler.SendOtp)
	auth.Post("/verify-otp", validate.VerifyOtp(), handler.VerifyOtp)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)

	table := v1.Group("/table", logger.New())
	table.Get("/", middleware.Protected(), handler.GetTables)
	table.Get("/floor-map", middleware.Protected(), handler.GetFloorMap)
	table.Get("/:tableId/qr", middleware.Protected(), validate.GetById("tableId"), handler.GetTableQR)
	table.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	table.Put("/:tableId", middleware.Protected(), validate.EditTable("tableId"), handler.EditTable)
	table.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTable)

	category := v1.Group("/category", logger.New())
	category.Get("/", middleware.Protected(), handler.GetCategories)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)

	menu := v1.Group("/menu", logger.New())
	menu.Get("/", middleware.Protected(), handler.GetMenuItems)
	menu.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/:menuItemId", middleware.Protected(), validate.EditMenuItem("menuItemId"), handler.EditMenuItem)
	menu.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteMenuItem)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/code/:orderCode", middleware.Protected(), handler.GetOrderByCode)
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Put("/:orderId", middleware.Protected(), validate.GetById("orderId"), validate.UpdateOrder(), handler.UpdateOrder)
	order.Post("/:orderId/kot", middleware.Protected(), validate.GetById("orderId"), handler.SendToKitchen)
	order.Post("/:orderId/settle", middleware.Protected(), validate.GetById("orderId"), validate.SettleOrder(), handler.SettleOrder)
	order.Post("/:orderId/cancel", middleware.Protected(), validate.GetById("orderId"), handler.CancelOrder)
	order.Patch("/:orderId/dish/all", middleware.Protected(), validate.GetById("orderId"), validate.DishStatus(), handler.UpdateAllDishStatus)
	order.Patch("/:orderId/dish/:itemId", middleware.Protected(), validate.GetById("orderId"), validate.DishStatus(), handler.UpdateDishStatus)

	kot := v1.Group("/kot", logger.New())
	kot.Get("/", middleware.Protected(), handler.GetOpenKots)

	staff := v1.Group("/staff", logger.New())
	staff.Get("/", middleware.Protected(), handler.GetStaffs)
	staff.Get("/:staffId", middleware.Protected(), validate.GetById("staffId"), handler.GetStaffById)
	staff.Post("/", middleware.Protected(), validate.CreateStaff(), handler.CreateStaff)
	staff.Put("/:staffId", middleware.Protected(), validate.EditStaff("staffId"), handler.EditStaff)
	staff.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteStaff)
	staff.Post("/:staffId/face", middleware.Protected(), validate.GetById("staffId"), validate.RegisterFace(), handler.RegisterFace)

	attendance := v1.Group("/attendance", logger.New())
	attendance.Get("/", middleware.Protected(), handler.GetAttendance)
	attendance.Post("/check-in", middleware.Protected(), validate.CheckIn(), handler.CheckIn)
	attendance.Post("/check-out", middleware.Protected(), validate.CheckOut(), handler.CheckOut)
	attendance.Post("/absent", middleware.Protected(), validate.MarkAbsent(), handler.MarkAbsent)
	attendance.Post("/identify", middleware.Protected(), validate.Identify(), handler.Identify)

	customer := v1.Group("/customer", logger.New())
	customer.Get("/", middleware.Protected(), handler.GetCustomers)
	customer.Get("/:customerId", middleware.Protected(), validate.GetById("customerId"), handler.GetCustomerById)
	customer.Post("/", middleware.Protected(), validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:customerId", middleware.Protected(), validate.EditCustomer("customerId"), handler.EditCustomer)
	customer.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCustomer)

	room := v1.Group("/room", logger.New())
	room.Get("/", middleware.Protected(), handler.GetRooms)
	room.Post("/", middleware.Protected(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:roomId", middleware.Protected(), validate.EditRoom("roomId"), handler.EditRoom)
	room.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteRoom)

	booking := v1.Group("/booking", logger.New())
	booking.Get("/", middleware.Protected(), handler.GetBookings)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Post("/:bookingId/check-in", middleware.Protected(), validate.GetById("bookingId"), handler.CheckInBooking)
	booking.Post("/:bookingId/check-out", middleware.Protected(), validate.GetById("bookingId"), handler.CheckOutBooking)
	booking.Post("/:bookingId/cancel", middleware.Protected(), validate.GetById("bookingId"), handler.CancelBooking)

	charge := v1.Group("/charge", logger.New())
	charge.Get("/", middleware.Protected(), handler.GetCharges)
	charge.Post("/", middleware.Protected(), validate.CreateCharge(), handler.CreateCharge)
	charge.Put("/:chargeId", middleware.Protected(), validate.EditCharge("chargeId"), handler.EditCharge)
	charge.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCharge)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetSummary)
	statistic.Get("/revenue-series", middleware.Protected(), handler.GetRevenueSeries)

	// Public
	public := v1.Group("/public")
	public.Get("/menu", middleware.OptionalJWT(), handler.GetPublicMenu)

	v1.Get("/ws/kot", middleware.Protected(), websocket.New(handler.KotWebsocket))
}
