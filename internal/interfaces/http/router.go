package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elb0ni/mis-finanzas-server/internal/application/analisis"
	"github.com/elb0ni/mis-finanzas-server/internal/application/auth"
	"github.com/elb0ni/mis-finanzas-server/internal/application/negocios"
	"github.com/elb0ni/mis-finanzas-server/internal/application/reportes"
	"github.com/elb0ni/mis-finanzas-server/internal/application/transacciones"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	NegociosUC     *negocios.UseCase
	TransaccionUC  *transacciones.UseCase
	CostosUC       *analisis.CostosUseCase
	EquilibrioUC   *analisis.EquilibrioUseCase
	PeriodoUC      *reportes.PeriodoUseCase
	RentabilidadUC *reportes.RentabilidadUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Negocios y recursos anidados (protegido)
	negocioHandler := NewNegocioHandler(deps.NegociosUC)
	negociosGroup := protected.Group("/negocios")
	negociosGroup.Post("/", negocioHandler.Create)
	negociosGroup.Get("/", negocioHandler.List)
	negociosGroup.Get("/:id", negocioHandler.GetByID)
	negociosGroup.Put("/:id", negocioHandler.Update)
	negociosGroup.Delete("/:id", negocioHandler.Delete)
	negociosGroup.Get("/:id/puntos-venta", negocioHandler.ListPuntosVenta)
	negociosGroup.Get("/:id/productos", negocioHandler.ListProductos)
	negociosGroup.Put("/:id/productos/:productoId", negocioHandler.UpdateProducto)
	negociosGroup.Delete("/:id/productos/:productoId", negocioHandler.DeleteProducto)
	negociosGroup.Get("/:id/categorias", negocioHandler.ListCategorias)
	negociosGroup.Put("/:id/categorias/:categoriaId", negocioHandler.UpdateCategoria)
	negociosGroup.Delete("/:id/categorias/:categoriaId", negocioHandler.DeleteCategoria)

	protected.Post("/productos", negocioHandler.CreateProducto)
	protected.Post("/categorias", negocioHandler.CreateCategoria)

	// Puntos de venta (protegido)
	puntos := protected.Group("/puntos-venta")
	puntos.Post("/", negocioHandler.CreatePuntoVenta)
	puntos.Put("/:id", negocioHandler.UpdatePuntoVenta)
	puntos.Delete("/:id", negocioHandler.DeletePuntoVenta)

	// Transacciones (protegido)
	transaccionHandler := NewTransaccionHandler(deps.TransaccionUC)
	protected.Post("/transacciones", transaccionHandler.Create)
	protected.Get("/transacciones/:id", transaccionHandler.GetByID)
	puntos.Get("/:id/transacciones", transaccionHandler.ListByPuntoVenta)

	// Costos fijos y su histórico mensual (protegido)
	costosHandler := NewCostosHandler(deps.CostosUC)
	protected.Post("/costos-fijos", costosHandler.Create)
	negociosGroup.Get("/:id/costos-fijos", costosHandler.List)
	negociosGroup.Put("/:id/costos-fijos/:configId", costosHandler.Update)
	negociosGroup.Delete("/:id/costos-fijos/:configId", costosHandler.Delete)
	negociosGroup.Post("/:id/costos-fijos/generar", costosHandler.GenerarSnapshot)
	negociosGroup.Get("/:id/costos-fijos/historico", costosHandler.Historico)

	// Análisis financiero y reportes (protegido)
	analisisHandler := NewAnalisisHandler(deps.EquilibrioUC, deps.PeriodoUC, deps.RentabilidadUC)
	analisisGroup := protected.Group("/analisis")
	analisisGroup.Get("/balancepoint/:negocioId", analisisHandler.BalancePoint)
	analisisGroup.Get("/productprofit/:negocioId", analisisHandler.ProductProfit)

	reportesGroup := protected.Group("/reportes")
	reportesGroup.Get("/dia/:negocioId", analisisHandler.ReporteDia)
	reportesGroup.Get("/semana/:negocioId", analisisHandler.ReporteSemana)
	reportesGroup.Get("/mes/:negocioId", analisisHandler.ReporteMes)
}
