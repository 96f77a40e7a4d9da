// Package labelsession runs label flows on behalf of UI clients.
//
// A Session owns one labelflow.Machine. It serializes every event the
// machine receives and carries out the effects that need no human: LoadData
// is answered by the order data loader and ValidateAddress by the address
// validator, each in its own goroutine, and their results are fed back as
// events. All other effects stay in the machine's effect cell until a client
// reads them.
//
// The Registry keeps running sessions in memory, keyed by a kernel.UUID.
package labelsession
