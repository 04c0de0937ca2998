package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-backend/internal/config"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	borrowingHandler "library-backend/internal/domains/borrowing/handler"
	borrowingRepo "library-backend/internal/domains/borrowing/repository"
	borrowingService "library-backend/internal/domains/borrowing/service"
	categoryHandler "library-backend/internal/domains/category/handler"
	categoryRepo "library-backend/internal/domains/category/repository"
	categoryService "library-backend/internal/domains/category/service"
	dashboardHandler "library-backend/internal/domains/dashboard/handler"
	dashboardRepo "library-backend/internal/domains/dashboard/repository"
	dashboardService "library-backend/internal/domains/dashboard/service"
	memberHandler "library-backend/internal/domains/member/handler"
	memberRepo "library-backend/internal/domains/member/repository"
	memberService "library-backend/internal/domains/member/service"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/borrowing"
	"library-backend/internal/domains/category"
	"library-backend/internal/domains/dashboard"
	"library-backend/internal/domains/member"

	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	CategoryRepo  category.CategoryRepository
	BookRepo      book.BookRepository
	MemberRepo    member.MemberRepository
	BorrowingRepo borrowing.BorrowingRepository
	DashboardRepo dashboard.Repository

	CategoryService  category.CategoryService
	BookService      book.BookService
	MemberService    member.MemberService
	BorrowingService borrowing.BorrowingService
	DashboardService dashboard.Service

	CategoryHandler  *categoryHandler.CategoryHandler
	BookHandler      *bookHandler.BookHandler
	MemberHandler    *memberHandler.MemberHandler
	BorrowingHandler *borrowingHandler.BorrowingHandler
	DashboardHandler *dashboardHandler.DashboardHandler
}

// NewContainer builds the whole graph. A failure here means the process
// should not start.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		// A dead Redis degrades the dashboard to uncached reads; the
		// rest of the API does not need it.
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("[Container] Redis connection failed (non-critical): %v", err)
		}
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CategoryRepo = categoryRepo.NewRepository(pool)
	c.BookRepo = bookRepo.NewRepository(pool)
	c.MemberRepo = memberRepo.NewRepository(pool)
	c.BorrowingRepo = borrowingRepo.NewRepository(pool)
	c.DashboardRepo = dashboardRepo.NewRepository(pool)
}

func (c *Container) initServices() {
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.CategoryRepo)
	c.MemberService = memberService.NewMemberService(c.MemberRepo)
	c.BorrowingService = borrowingService.NewBorrowingService(c.BorrowingRepo, c.MemberRepo)
	c.DashboardService = dashboardService.NewDashboardService(c.DashboardRepo, c.Cache, c.Config.Dashboard)
}

func (c *Container) initHandlers() {
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.MemberHandler = memberHandler.NewMemberHandler(c.MemberService)
	c.BorrowingHandler = borrowingHandler.NewBorrowingHandler(c.BorrowingService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)
}

// Cleanup releases infrastructure connections, in reverse order of
// initialization.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("[Container] Redis close failed: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
