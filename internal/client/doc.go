// Package client is a Go client for the linea HTTP API.
//
// Requests go through a token-bucket limiter, a retrying transport
// (go-retryablehttp) and a circuit breaker that only trips on transport
// errors and 5xx responses. Tool failures such as a zero vector being
// normalized are not errors at this layer: they come back as a
// types.Result with Success false.
//
//	c := client.New(client.Config{BaseURL: "http://localhost:8000"})
//	res, err := c.Execute(ctx, "vector.dot", map[string]interface{}{
//	    "v": []float64{1, 2},
//	    "w": []float64{3, 4},
//	})
package client
