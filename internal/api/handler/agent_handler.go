package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ims-platform/inventory-system/internal/core/ports"
)

// AgentHandler handles HTTP requests for agent management.
type AgentHandler struct {
	agentService ports.AgentService
}

func NewAgentHandler(agentService ports.AgentService) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id parameter")
	}
	return id, nil
}

// Create registers a new agent account.
//
// @Summary      Create an agent
// @Tags         agents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAgentRequest  true  "Agent data"
// @Success      201   {object}  apiResponse{data=agentResponse}
// @Failure      400   {object}  errorResponse
// @Router       /agents [post]
func (h *AgentHandler) Create(c echo.Context) error {
	var req createAgentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Validation failed", err.Error()))
	}

	// Username defaults to the local part of the email when omitted.
	username := req.Username
	if username == "" {
		if at := strings.IndexByte(req.Email, '@'); at > 0 {
			username = req.Email[:at]
		} else {
			username = req.Email
		}
	}

	agent, err := h.agentService.Create(c.Request().Context(), ports.CreateAgentInput{
		Email:         req.Email,
		Username:      username,
		Password:      req.Password,
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
		CompanyName:   req.CompanyName,
		CompanyAddr:   req.CompanyAddress,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, success("Agent created successfully", toAgent(agent)))
}

// List returns every agent, any status.
//
// @Summary      List agents
// @Tags         agents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse{data=[]agentResponse}
// @Router       /agents [get]
func (h *AgentHandler) List(c echo.Context) error {
	agents, err := h.agentService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Agents retrieved successfully", toAgents(agents)))
}

// Get returns a single agent by id.
//
// @Summary      Get an agent
// @Tags         agents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Agent ID"
// @Success      200  {object}  apiResponse{data=agentResponse}
// @Failure      404  {object}  errorResponse
// @Router       /agents/{id} [get]
func (h *AgentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	agent, err := h.agentService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Agent retrieved successfully", toAgent(agent)))
}

// Update applies a partial update to an agent. Only the fields present in
// the payload change.
//
// @Summary      Update an agent
// @Tags         agents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Agent ID"
// @Param        body  body      updateAgentRequest  true  "Fields to update"
// @Success      200   {object}  apiResponse{data=agentResponse}
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /agents/{id} [put]
func (h *AgentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAgentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Validation failed", err.Error()))
	}

	err = h.agentService.Update(c.Request().Context(), id, ports.UpdateAgentInput{
		Email:         req.Email,
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
		CompanyName:   req.CompanyName,
		CompanyAddr:   req.CompanyAddress,
	})
	if err != nil {
		return err
	}

	agent, err := h.agentService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Agent updated successfully", toAgent(agent)))
}

// UpdatePassword replaces an agent's password.
//
// @Summary      Update an agent's password
// @Tags         agents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Agent ID"
// @Param        body  body      updatePasswordRequest  true  "New password"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /agents/{id}/password [put]
func (h *AgentHandler) UpdatePassword(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Validation failed", err.Error()))
	}

	if err := h.agentService.UpdatePassword(c.Request().Context(), id, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Password updated successfully", nil))
}

// Deactivate marks an agent INACTIVE. Inactive agents cannot authenticate
// and cannot be assigned to orders.
//
// @Summary      Deactivate an agent
// @Tags         agents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Agent ID"
// @Success      200  {object}  apiResponse{data=agentResponse}
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /agents/{id}/deactivate [put]
func (h *AgentHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.agentService.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}

	agent, err := h.agentService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Agent deactivated successfully", toAgent(agent)))
}

// Activate marks an agent ACTIVE again.
//
// @Summary      Activate an agent
// @Tags         agents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Agent ID"
// @Success      200  {object}  apiResponse{data=agentResponse}
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /agents/{id}/activate [put]
func (h *AgentHandler) Activate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.agentService.Activate(c.Request().Context(), id); err != nil {
		return err
	}

	agent, err := h.agentService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Agent activated successfully", toAgent(agent)))
}
