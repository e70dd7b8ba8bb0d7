package usecase

import "fmt"

// ErrInfrastructure indicates a cache, queue, or repository failure inside a use case
var ErrInfrastructure = fmt.Errorf("verification use case infrastructure error")
