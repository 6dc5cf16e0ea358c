package extract

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/luxscale/go-engine/gen/extraction"
	"github.com/luxscale/go-engine/internal/report"
)

//go:generate protoc --go_out=../../gen --go-grpc_out=../../gen --proto_path=../../proto extraction.proto

// #region types
// Result holds the response from an Extract RPC call.
type Result struct {
	Report   *report.Report
	Warnings []string
}

// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the Python extraction service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.ExtractionServiceClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the Python extraction gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewExtractionServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.ExtractionServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region extract
// Extract sends raw PDF bytes to the extraction service and parses the
// returned report JSON.
func (c *Client) Extract(ctx context.Context, pdf []byte, filename string, ocrFallback bool) (Result, error) {
	resp, err := c.client.Extract(ctx, &pb.ExtractRequest{
		Pdf:         pdf,
		Filename:    filename,
		OcrFallback: ocrFallback,
	})
	if err != nil {
		return Result{}, fmt.Errorf("extract rpc: %w", err)
	}

	rep, err := report.Parse([]byte(resp.ReportJson))
	if err != nil {
		return Result{}, fmt.Errorf("extracted report: %w", err)
	}

	return Result{
		Report:   rep,
		Warnings: resp.Warnings,
	}, nil
}

// ExtractFile reads a PDF from disk and extracts it.
func (c *Client) ExtractFile(ctx context.Context, path string, ocrFallback bool) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read pdf %s: %w", path, err)
	}
	return c.Extract(ctx, data, path, ocrFallback)
}

// #endregion extract
