package models

import "github.com/VladKvetkin/takeaway/internal/entities"

type RegisterRequest struct {
	Name       string `json:"nom"`
	Surname    string `json:"prenom"`
	Email      string `json:"email"`
	Phone      string `json:"telephone"`
	Address    string `json:"adresse"`
	PostalCode string `json:"npa"`
	City       string `json:"ville"`
	Country    string `json:"pays"`
	BirthDate  string `json:"dateNaissance"`
	Password   string `json:"password"`
}

type RegisterResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"nom"`
	Surname    string `json:"prenom"`
	Email      string `json:"email"`
	Phone      string `json:"telephone"`
	Address    string `json:"adresse"`
	PostalCode string `json:"npa"`
	City       string `json:"ville"`
	Country    string `json:"pays"`
}

type AccountResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"nom"`
	Surname    string `json:"prenom"`
	Email      string `json:"email"`
	Phone      string `json:"telephone"`
	Address    string `json:"adresse"`
	PostalCode string `json:"npa"`
	City       string `json:"ville"`
	Country    string `json:"pays"`
	BirthDate  string `json:"dateNaissance"`
	CreatedAt  string `json:"createdAt"`
}

type CreateOrderRequest struct {
	UserID     int64          `json:"userId"`
	Items      entities.Items `json:"items"`
	Total      *float64       `json:"total"`
	PickupDate string         `json:"pickupDate"`
	PickupTime string         `json:"pickupTime"`
}

type CreateOrderResponse struct {
	ID int64 `json:"id"`
}

type GetOrdersResponse []OrderResponse

type OrderResponse struct {
	ID         int64          `json:"id"`
	UserID     int64          `json:"userId"`
	Items      entities.Items `json:"items"`
	Total      float64        `json:"total"`
	PickupDate string         `json:"pickupDate"`
	PickupTime string         `json:"pickupTime"`
	Status     string         `json:"status"`
	CreatedAt  string         `json:"createdAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
