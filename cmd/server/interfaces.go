package main

import "context"

type ImportRunner interface {
	Run(ctx context.Context) error
}
