// Package repository 仓储单元测试公共设施
package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dumeirei/hotel-ops-backend/internal/models"
)

// setupTestDB 建立内存数据库并迁移全部模型
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Client{},
		&models.Hotel{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.PaymentType{},
		&models.Stay{},
		&models.Service{},
		&models.ServiceUsage{},
		&models.Feedback{},
	)
	require.NoError(t, err)

	return db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedClient(t *testing.T, db *gorm.DB) *models.Client {
	client := &models.Client{FullName: "张三", Phone: "13800138000", Email: "zhangsan@example.com"}
	require.NoError(t, db.Create(client).Error)
	return client
}

func seedHotel(t *testing.T, db *gorm.DB) *models.Hotel {
	hotel := &models.Hotel{Name: "测试酒店", Address: "深圳市南山区科技园"}
	require.NoError(t, db.Create(hotel).Error)
	return hotel
}

func seedRoomType(t *testing.T, db *gorm.DB, hotelID int64) *models.RoomType {
	roomType := &models.RoomType{
		HotelID:       hotelID,
		RoomNumber:    "101",
		TypeName:      "标准间",
		PricePerNight: 300,
		Capacity:      2,
	}
	require.NoError(t, db.Create(roomType).Error)
	return roomType
}

func seedRoom(t *testing.T, db *gorm.DB, hotelID, roomTypeID int64, roomNumber string) *models.Room {
	room := &models.Room{
		HotelID:       hotelID,
		RoomTypeID:    roomTypeID,
		RoomNumber:    roomNumber,
		PricePerNight: 300,
		Capacity:      2,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedBooking(t *testing.T, db *gorm.DB, clientID, roomTypeID, hotelID int64) *models.Booking {
	booking := &models.Booking{
		ClientID:     clientID,
		RoomTypeID:   roomTypeID,
		HotelID:      hotelID,
		BookingDate:  date(2025, 6, 1),
		CheckInDate:  date(2025, 6, 10),
		CheckOutDate: date(2025, 6, 12),
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func seedPaymentType(t *testing.T, db *gorm.DB) *models.PaymentType {
	paymentType := &models.PaymentType{NamePayment: "现金"}
	require.NoError(t, db.Create(paymentType).Error)
	return paymentType
}

func seedStay(t *testing.T, db *gorm.DB, roomID, bookingID, paymentTypeID int64) *models.Stay {
	stay := &models.Stay{
		RoomID:        roomID,
		BookingID:     bookingID,
		Payment:       600,
		CheckInDate:   date(2025, 6, 10),
		CheckOutDate:  date(2025, 6, 12),
		TypePaymentID: paymentTypeID,
		TotalPrice:    600,
	}
	require.NoError(t, db.Create(stay).Error)
	return stay
}

func seedService(t *testing.T, db *gorm.DB) *models.Service {
	service := &models.Service{ServiceName: "早餐", Price: 50}
	require.NoError(t, db.Create(service).Error)
	return service
}

// seedStayChain 建好一条完整的入住链路：客户→酒店→房型→房间→预订→支付方式→入住
func seedStayChain(t *testing.T, db *gorm.DB) *models.Stay {
	client := seedClient(t, db)
	hotel := seedHotel(t, db)
	roomType := seedRoomType(t, db, hotel.ID)
	room := seedRoom(t, db, hotel.ID, roomType.ID, "101")
	booking := seedBooking(t, db, client.ID, roomType.ID, hotel.ID)
	paymentType := seedPaymentType(t, db)
	return seedStay(t, db, room.ID, booking.ID, paymentType.ID)
}
