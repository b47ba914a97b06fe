package handles

import (
	"github.com/cockroachdb/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"refkit/ptr"
)

// DialGRPC creates a client connection to target. Without options the
// connection uses plaintext transport. No I/O happens until the first RPC.
func DialGRPC(target string, opts ...grpc.DialOption) (*ptr.Shared[grpc.ClientConn], error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "grpc client for %q", target)
	}
	return ptr.New(conn), nil
}
