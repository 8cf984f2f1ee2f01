package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roznerx/guater-sub000/services"
)

type AccountController struct {
	Accounts *services.AccountService
}

func NewAccountController(accounts *services.AccountService) *AccountController {
	return &AccountController{Accounts: accounts}
}

// DeleteData wipes every row the account owns. The account survives.
func (ac *AccountController) DeleteData(c *gin.Context) {
	if err := ac.Accounts.DeleteAllData(c.Request.Context(), c.GetUint("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate disables the signed-in account; existing tokens stop
// working because the middleware filters disabled users.
func (ac *AccountController) Deactivate(c *gin.Context) {
	if err := ac.Accounts.Deactivate(c.Request.Context(), c.GetUint("userID")); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
