// Package restaurant contains the Restaurant aggregate and its menu.
//
// A restaurant owns its menu items; an order may only reference menu items of
// the restaurant it is placed with, which the aggregate checks via
// ValidateMenuSelection. Prices are exact decimals, never floats.
package restaurant
