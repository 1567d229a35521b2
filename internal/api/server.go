package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/altiusfest/altius-api/docs"
	v1 "github.com/altiusfest/altius-api/internal/api/handler/v1"
	"github.com/altiusfest/altius-api/internal/api/middleware"
	"github.com/altiusfest/altius-api/internal/config"
	"github.com/altiusfest/altius-api/internal/repository"
	"github.com/altiusfest/altius-api/internal/repository/dao"
	"github.com/altiusfest/altius-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	collegeHandler := s.initCollegeHandler(db)
	departmentHandler := s.initDepartmentHandler(db)
	dashboardHandler := s.initDashboardHandler(db)
	s.MountHandlers(authHandler, collegeHandler, departmentHandler, dashboardHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initCollegeHandler(db *gorm.DB) *v1.CollegeHandler {
	collegeDAO := dao.NewCollegeDAO(db)
	repo := repository.NewCollegeRepository(collegeDAO)
	svc := service.NewCollegeService(repo)
	handler := v1.NewCollegeHandler(svc)

	return handler
}

func (s *Server) initDepartmentHandler(db *gorm.DB) *v1.DepartmentHandler {
	departmentDAO := dao.NewDepartmentDAO(db)
	repo := repository.NewDepartmentRepository(departmentDAO)
	svc := service.NewDepartmentService(repo)

	winnerRepo := repository.NewWinnerRepository(dao.NewWinnerDAO(db))
	scoreSvc := service.NewScoreService(repo, winnerRepo)
	handler := v1.NewDepartmentHandler(svc, scoreSvc)

	return handler
}

func (s *Server) initDashboardHandler(db *gorm.DB) *v1.DashboardHandler {
	winnerRepo := repository.NewWinnerRepository(dao.NewWinnerDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	winnerSvc := service.NewWinnerService(winnerRepo, userRepo)

	collegeSvc := service.NewCollegeService(repository.NewCollegeRepository(dao.NewCollegeDAO(db)))
	handler := v1.NewDashboardHandler(winnerSvc, collegeSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	collegeHandler *v1.CollegeHandler,
	departmentHandler *v1.DepartmentHandler,
	dashboardHandler *v1.DashboardHandler,
) {
	const basePath = "/api/v1"

	authLimiter := middleware.NewRateLimiter(s.Config.API.AuthRateLimit)

	auth := s.Router.Group(basePath, authLimiter.Limit())
	{
		auth.POST("/signup", authHandler.HandleSignup)
		auth.POST("/login", authHandler.HandleLogin)
	}

	// Leaderboard-style reads stay public so the display pages can poll
	// without a session.
	public := s.Router.Group(basePath)
	{
		public.GET("/college", collegeHandler.HandleListColleges)
		public.GET("/department", departmentHandler.HandleListDepartments)
		public.GET("/dashboard", dashboardHandler.HandleLeaderboard)
		public.GET("/dashboard/:username", dashboardHandler.HandleListWinners)
	}

	protected := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		protected.POST("/college", collegeHandler.HandleCreateCollege)
		protected.PUT("/college/:id", collegeHandler.HandleUpdateCollege)
		protected.DELETE("/college/:id", collegeHandler.HandleDeleteCollege)

		protected.POST("/department", departmentHandler.HandleCreateDepartments)
		protected.PUT("/department/:id", departmentHandler.HandleUpdateDepartment)
		protected.DELETE("/department/:id", departmentHandler.HandleDeleteDepartment)

		protected.POST("/dashboard", dashboardHandler.HandleRecordWinner)
		protected.DELETE("/winner/:id", dashboardHandler.HandleDeleteWinner)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Altius event-scoring API"
	docs.SwaggerInfo.Description = "College fest scoring and leaderboards."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
