package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"aeronaa/internal/database"
	"aeronaa/internal/domain"
	"aeronaa/internal/repository"
)

func main() {
	ctx := context.Background()

	db, err := database.Connect("aeronaa.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM vendors")
	db.Exec("DELETE FROM users")

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@aeronaa.com",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Platform Admin",
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Fatal("admin create failed:", err)
	}
	log.Println("Admin created: admin@aeronaa.com / admin123")

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	clients := make([]domain.User, 0, 3)
	for i, email := range []string{"amir@example.com", "sara@example.com", "omar@example.com"} {
		u := domain.User{
			Email:        email,
			PasswordHash: string(clientHash),
			Role:         domain.RoleClient,
			Name:         fmt.Sprintf("Client %d", i+1),
		}
		if err := userRepo.Create(ctx, &u); err != nil {
			log.Fatal("client create failed:", err)
		}
		clients = append(clients, u)
	}

	// ================== VENDORS ==================
	log.Println("Creating vendors...")

	vendorNames := []string{"Al Safwah Royale Orchid", "Makkah Towers", "Jabal Omar Hyatt"}
	vendors := make([]domain.Vendor, 0, len(vendorNames))
	vendorHash, _ := bcrypt.GenerateFromPassword([]byte("vendor123"), bcrypt.DefaultCost)
	for i, name := range vendorNames {
		owner := domain.User{
			Email:        fmt.Sprintf("vendor%d@aeronaa.com", i+1),
			PasswordHash: string(vendorHash),
			Role:         domain.RoleVendor,
			Name:         name + " Owner",
		}
		if err := userRepo.Create(ctx, &owner); err != nil {
			log.Fatal("vendor owner create failed:", err)
		}

		now := time.Now().UTC()
		v := domain.Vendor{
			OwnerID:       owner.ID,
			Name:          name,
			City:          "Makkah",
			Country:       "Saudi Arabia",
			ContactPerson: owner.Name,
			Status:        domain.VendorVerified,
			VerifiedAt:    &now,
		}
		if err := vendorRepo.Create(ctx, &v); err != nil {
			log.Fatal("vendor create failed:", err)
		}
		vendors = append(vendors, v)
		log.Printf("Vendor created: %s (vendor%d@aeronaa.com / vendor123)", name, i+1)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	paymentTypes := []domain.PaymentType{domain.PaymentOnline, domain.PaymentPayAtHotel}
	created := 0
	for monthsBack := 0; monthsBack < 6; monthsBack++ {
		monthStart := time.Now().UTC().AddDate(0, -monthsBack, 0)
		for i := 0; i < 10; i++ {
			vendorIdx := rand.Intn(len(vendors) + 1)
			var vendorID *int64
			if vendorIdx < len(vendors) {
				vendorID = &vendors[vendorIdx].ID
			}

			checkIn := time.Date(monthStart.Year(), monthStart.Month(), 1+rand.Intn(27), 14, 0, 0, 0, time.UTC)
			nights := 1 + rand.Intn(7)

			b := domain.Booking{
				ReferenceCode: uuid.NewString(),
				VendorID:      vendorID,
				UserID:        clients[rand.Intn(len(clients))].ID,
				Amount:        float64(50+rand.Intn(450)) * float64(nights),
				PaymentType:   paymentTypes[rand.Intn(len(paymentTypes))],
				PaymentStatus: domain.PaymentPaid,
				CheckInDate:   checkIn,
				CheckOutDate:  checkIn.AddDate(0, 0, nights),
				IsActive:      rand.Intn(10) != 0, // roughly 10% cancelled
			}
			if !b.IsActive {
				cancelledAt := checkIn.AddDate(0, 0, -3)
				b.CancelledAt = &cancelledAt
				b.CancellationReason = "Change of plans"
				b.PaymentStatus = domain.PaymentRefunded
			}
			if err := bookingRepo.Create(ctx, &b); err != nil {
				log.Fatal("booking create failed:", err)
			}
			created++
		}
	}

	log.Printf("Seed complete: %d bookings across %d vendors", created, len(vendors))
}
