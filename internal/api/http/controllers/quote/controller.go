package quote

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alikebabay/cake-price/internal/alias"
	"github.com/alikebabay/cake-price/internal/ports"
)

// Controller — маршрут котировок: принимает свободный текст, резолвит его
// в коды и отдаёт готовый ответ сервиса.
type Controller struct {
	uc       ports.RateService
	resolver *alias.Resolver
	log      *slog.Logger
}

// New создаёт контроллер котировок.
func New(uc ports.RateService, resolver *alias.Resolver, log *slog.Logger) *Controller {
	return &Controller{uc: uc, resolver: resolver, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/quote", c.quote)
}

// @Summary Цена торта и зарплата в тортах
// @Description Принимает свободный текст (валюта или страна, русский/английский/символ/ISO-код), возвращает текст ответа.
// @Tags quote
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Запрос пользователя"
// @Success 200 {object} QuoteResponse "Готовый текст ответа"
// @Failure 400 {object} QuoteResponse "Невалидный запрос или неопознанный ввод"
// @Failure 500 {object} QuoteResponse "Внутренняя ошибка сервера"
// @Router /api/v1/quote [post]
func (c *Controller) quote(ctx *gin.Context) {
	var req QuoteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("quote bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, QuoteResponse{Message: "invalid request: " + err.Error()})
		return
	}

	currency, iso3 := c.resolver.Resolve(req.Query)
	if currency == "" && iso3 == "" {
		c.log.Warn("quote unrecognized input", "query", req.Query)
		ctx.JSON(http.StatusBadRequest, QuoteResponse{Message: "не понял, что за валюта или страна"})
		return
	}

	text, err := c.uc.Serve(ctx.Request.Context(), currency, iso3)
	if err != nil {
		c.log.Error("quote failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, QuoteResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, QuoteResponse{Text: text, Currency: currency, CountryISO3: iso3})
}
