// Package order contains the Order aggregate and its lifecycle state machine.
//
// An Order ties a customer, a restaurant, and a frozen set of menu item
// quantities to a status. The status moves strictly forward through
// Sent -> Received -> Shipping -> Delivered; Delivered is terminal. Order
// contents are fixed at creation and never mutated afterwards - the only
// legal mutations are advancing the status and assigning a delivery bot.
package order
