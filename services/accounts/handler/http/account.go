package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/accounts"
)

// AccountHandler handles admin, client and abastecedor management
type AccountHandler struct {
	accountUC accounts.AccountUC
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUC accounts.AccountUC) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
	}
}

// CreateAdmin handles admin creation
func (h *AccountHandler) CreateAdmin(c echo.Context) error {
	var req models.AdminRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	admin, err := h.accountUC.CreateAdmin(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create admin")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Admin created successfully", admin)
}

// ListAdmins handles admin listing
func (h *AccountHandler) ListAdmins(c echo.Context) error {
	admins, err := h.accountUC.ListAdmins(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err, "Failed to list admins")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Admins retrieved successfully", admins)
}

// CreateClient handles client creation
func (h *AccountHandler) CreateClient(c echo.Context) error {
	var req models.ClientRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	client, err := h.accountUC.CreateClient(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create client")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Client created successfully", client)
}

// UpdateClient handles client updates
func (h *AccountHandler) UpdateClient(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid client ID")
	}
	var req models.ClientRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	client, err := h.accountUC.UpdateClient(c.Request().Context(), id, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update client")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", client)
}

// DeleteClient handles client removal
func (h *AccountHandler) DeleteClient(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid client ID")
	}
	if err := h.accountUC.DeleteClient(c.Request().Context(), id); err != nil {
		return utils.HandleError(c, err, "Failed to delete client")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Client deleted successfully", nil)
}

// GetClient handles client retrieval
func (h *AccountHandler) GetClient(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid client ID")
	}
	client, err := h.accountUC.GetClient(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve client")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Client retrieved successfully", client)
}

// ListClients handles client listing
func (h *AccountHandler) ListClients(c echo.Context) error {
	clients, err := h.accountUC.ListClients(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err, "Failed to list clients")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Clients retrieved successfully", clients)
}

// CreateAbastecedor handles abastecedor creation
func (h *AccountHandler) CreateAbastecedor(c echo.Context) error {
	var req models.AbastecedorRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	a, err := h.accountUC.CreateAbastecedor(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create abastecedor")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Abastecedor created successfully", a)
}

// UpdateAbastecedor handles abastecedor updates
func (h *AccountHandler) UpdateAbastecedor(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid abastecedor ID")
	}
	var req models.AbastecedorRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	a, err := h.accountUC.UpdateAbastecedor(c.Request().Context(), id, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update abastecedor")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Abastecedor updated successfully", a)
}

// DeleteAbastecedor handles abastecedor removal
func (h *AccountHandler) DeleteAbastecedor(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid abastecedor ID")
	}
	if err := h.accountUC.DeleteAbastecedor(c.Request().Context(), id); err != nil {
		return utils.HandleError(c, err, "Failed to delete abastecedor")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Abastecedor deleted successfully", nil)
}

// GetAbastecedor handles abastecedor retrieval
func (h *AccountHandler) GetAbastecedor(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid abastecedor ID")
	}
	a, err := h.accountUC.GetAbastecedor(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve abastecedor")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Abastecedor retrieved successfully", a)
}

// ListAbastecedores handles abastecedor listing
func (h *AccountHandler) ListAbastecedores(c echo.Context) error {
	list, err := h.accountUC.ListAbastecedores(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err, "Failed to list abastecedores")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Abastecedores retrieved successfully", list)
}
