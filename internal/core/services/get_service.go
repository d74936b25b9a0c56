package services

import (
	"context"
	"fmt"
	"reflect"

	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/ports/driving"
)

// GetService creates a client through factory using the configured server and
// returns it as T.
//
//	users, err := services.GetService[*v112.UserRemoteService](ctx, f, v112.UserRemoteServiceSignature, user)
func GetService[T any](
	ctx context.Context,
	factory driving.ServiceFactory,
	signature domain.ServiceSignature,
	user *domain.User,
) (T, error) {
	return GetServiceAt[T](ctx, factory, signature, user, "")
}

// GetServiceAt is GetService against an explicit server URL.
func GetServiceAt[T any](
	ctx context.Context,
	factory driving.ServiceFactory,
	signature domain.ServiceSignature,
	user *domain.User,
	serverURL string,
) (T, error) {
	var zero T

	client, err := factory.CreateService(ctx, signature, user, serverURL)
	if err != nil {
		return zero, err
	}

	service, ok := client.(T)
	if !ok {
		return zero, &domain.TypeMismatchError{
			Expected: reflect.TypeFor[T]().String(),
			Actual:   fmt.Sprintf("%T", client),
		}
	}
	return service, nil
}
