// Package box contains the Box aggregate and its status state machine.
// A box is the unit whose status actually moves through the logistics
// pipeline; orders derive their status from their boxes.
package box
