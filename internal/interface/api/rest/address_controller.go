package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact-manager-api/internal/application/ports"
	"contact-manager-api/internal/infrastructure/jwt"
	"contact-manager-api/internal/interface/api/rest/dto/address"
	"contact-manager-api/internal/interface/api/rest/middleware"
)

// AddressController proxies the postal directory so the frontend can
// auto-fill address forms without talking to the provider directly.
type AddressController struct {
	addressService ports.AddressService
	logger         *zap.Logger
}

func NewAddressController(
	r *gin.Engine,
	addressService ports.AddressService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AddressController {
	ac := &AddressController{
		addressService: addressService,
		logger:         logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	r.GET(RouteAddressSearch, authed, ac.SearchAddressesHandler)
	r.GET(RouteAddressCEP, authed, ac.LookupCEPHandler)

	return ac
}

func (ac *AddressController) LookupCEPHandler(c *gin.Context) {
	addr := ac.addressService.LookupCEP(c.Request.Context(), c.Param("cep"))
	if addr == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "cep not found"},
		)
		return
	}

	c.JSON(http.StatusOK, address.LookupResponse{
		Address: address.ToResponseAddress(*addr),
	})
}

// SearchAddressesHandler always answers 200: an unknown street is an
// empty suggestion list, not an error.
func (ac *AddressController) SearchAddressesHandler(c *gin.Context) {
	addrs := ac.addressService.SearchAddresses(
		c.Request.Context(),
		c.Query("uf"),
		c.Query("city"),
		c.Query("street"),
	)

	c.JSON(http.StatusOK, address.SearchResponse{
		Addresses: address.ToResponseAddresses(addrs),
	})
}
