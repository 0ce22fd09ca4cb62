package stubapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with the full REST surface the app core uses.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", s.login)
		auth.POST("/register", s.register)
	}

	users := r.Group("/api/users", s.authRequired())
	{
		users.PUT("/update", s.updateUser)
		users.POST("/create-admin", s.createAdmin)
	}

	r.GET("/api/products", s.listProducts)
	r.POST("/api/products", s.authRequired(), requireRole("admin"), s.createProduct)

	stores := r.Group("/api/stores", s.authRequired())
	{
		stores.GET("", s.listStores)
		stores.POST("", s.addStore)
		stores.PUT("/:id", s.updateStore)
		stores.DELETE("/:id", s.deleteStore)
	}

	return r
}
