package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bhortijuddho/admission-svc/config"
	"github.com/bhortijuddho/admission-svc/infra/queue"
	"github.com/bhortijuddho/admission-svc/internal/api/rest/handlers"
	"github.com/bhortijuddho/admission-svc/internal/auth"
	"github.com/bhortijuddho/admission-svc/internal/clients/counselor"
	"github.com/bhortijuddho/admission-svc/internal/domain"
	"github.com/bhortijuddho/admission-svc/internal/helper"
	"github.com/bhortijuddho/admission-svc/internal/repository"
	"github.com/bhortijuddho/admission-svc/internal/services"
	"github.com/bhortijuddho/admission-svc/pkg/cloudinary"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: false,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260115

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.Profile{},
		&domain.University{},
		&domain.Program{},
		&domain.Application{},
		&domain.Essay{},
		&domain.AcademicRecord{},
		&domain.Document{},
		&domain.ApplicationStatusAudit{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	seedCatalog(db)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	var up *cloudinary.CloudinaryUploader
	if cfg.CloudinaryURL != "" {
		cld, err := cloudinary.New()
		if err != nil {
			log.Fatalf("cloudinary init error: %v", err)
		}
		up = cloudinary.NewCloudinaryUploader(cld)
	} else {
		log.Println("CLOUDINARY_URL not set, uploads disabled")
	}

	counselorClient := counselor.New(cfg.CounselorAPIKey, cfg.CounselorAPIURL)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	profileRepo := repository.NewProfileRepository(db)
	universityRepo := repository.NewUniversityRepository(db)
	programRepo := repository.NewProgramRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	essayRepo := repository.NewEssayRepository(db)
	recordRepo := repository.NewAcademicRecordRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// ---------- Services ----------
	provider := auth.NewProvider(cfg.AuthProvider, auth.Deps{Profiles: profileRepo})
	log.Printf("auth provider: %s", cfg.AuthProvider)

	studentSvc := services.NewStudentService(
		profileRepo,
		recordRepo,
		documentRepo,
		essayRepo,
		appRepo,
		up,
	)
	admissionSvc := services.NewAdmissionService(
		universityRepo,
		programRepo,
		appRepo,
		profileRepo,
	)
	adminSvc := services.NewAdminService(
		cfg.AdminPasscode,
		profileRepo,
		universityRepo,
		programRepo,
		appRepo,
		auditRepo,
		kafkaProducer,
	)
	counselorSvc := services.NewCounselorService(
		counselorClient,
		profileRepo,
		appRepo,
		documentRepo,
	)

	// ---------- Handlers ----------
	// Public routes must land in the stack before any group that mounts the
	// auth middleware on /api, so registration order matters here.
	handlers.NewAuthHandler(provider, authHelper, adminSvc).SetupRoutes(app)
	handlers.NewAdmissionHandler(admissionSvc, authHelper).SetupRoutes(app)
	handlers.NewStudentHandler(studentSvc, authHelper).SetupRoutes(app)
	handlers.NewCounselorHandler(counselorSvc, authHelper).SetupRoutes(app)
	handlers.NewAdminHandler(adminSvc, authHelper).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

// seedCatalog loads a starter set of universities and programs so a fresh
// database has something to browse. Skipped once any university exists.
func seedCatalog(db *gorm.DB) {
	var count int64
	if err := db.Model(&domain.University{}).Count(&count).Error; err != nil {
		log.Printf("seed check error: %v", err)
		return
	}
	if count > 0 {
		return
	}

	f := func(v float64) *float64 { return &v }
	n := func(v int) *int { return &v }

	seeds := []struct {
		uni      domain.University
		programs []domain.Program
	}{
		{
			uni: domain.University{Name: "University of Dhaka", Country: "Bangladesh"},
			programs: []domain.Program{
				{Name: "BSc in Computer Science", MinSSCGPA: f(4.5), MinHSCGPA: f(4.5), MinOLevelPoints: n(20), MinALevelPoints: n(10), Duration: "4 years", IntakeTerm: "Spring"},
				{Name: "BBA", MinSSCGPA: f(4.0), MinHSCGPA: f(4.0), Duration: "4 years", IntakeTerm: "Fall"},
			},
		},
		{
			uni: domain.University{Name: "BUET", Country: "Bangladesh"},
			programs: []domain.Program{
				{Name: "BSc in EEE", MinSSCGPA: f(5.0), MinHSCGPA: f(5.0), MinOLevelPoints: n(24), MinALevelPoints: n(12), Duration: "4 years", IntakeTerm: "Spring"},
			},
		},
		{
			uni: domain.University{Name: "North South University", Country: "Bangladesh"},
			programs: []domain.Program{
				{Name: "BSc in CSE", MinSSCGPA: f(3.5), MinHSCGPA: f(3.5), MinOLevelPoints: n(15), MinALevelPoints: n(8), Duration: "4 years", IntakeTerm: "Summer"},
				{Name: "BA in English", Duration: "4 years", IntakeTerm: "Fall"},
			},
		},
	}

	for _, s := range seeds {
		uni := s.uni
		if err := db.Create(&uni).Error; err != nil {
			log.Printf("seed university error: %v", err)
			continue
		}
		for _, p := range s.programs {
			p.UniversityID = uni.ID
			if err := db.Create(&p).Error; err != nil {
				log.Printf("seed program error: %v", err)
			}
		}
	}
	log.Println("catalog seeded")
}
