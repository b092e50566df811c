package client

import "context"

type Repository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, id string) (*Client, error)
	GetDetailByID(ctx context.Context, id string) (*Detail, error)
	List(ctx context.Context, filter ListFilter) ([]Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id string) error
}
