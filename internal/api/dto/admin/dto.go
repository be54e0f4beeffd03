package admin

import "scratch_backend/internal/model"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
}

type OverrideRequest struct {
	Enable bool `json:"enable"`
}

type StatusResponse struct {
	NextGoldBeanTrigger bool `json:"nextGoldBeanTrigger"`
}

type OverrideResponse struct {
	Success             bool `json:"success"`
	NextGoldBeanTrigger bool `json:"nextGoldBeanTrigger"`
}

type ClaimsResponse struct {
	Claims []model.FulfillmentClaim `json:"claims"`
}
