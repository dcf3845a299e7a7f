package server_test

import (
	"context"
	"net"
	"testing"
	"time"

	onboardingpb "github.com/mgiwa78/hr-intern-macro-app/internal/adapters/grpc/gen/onboarding/v1"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type unimplementedOnboarding struct {
	onboardingpb.UnimplementedOnboardingServiceServer
}

func TestServer_ServesHealthAndOnboarding(t *testing.T) {
	t.Parallel()

	lis := bufconn.Listen(1 << 20)
	srv := server.New("", unimplementedOnboarding{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: onboardingpb.OnboardingService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	_, err = onboardingpb.NewOnboardingServiceClient(conn).GetEmployee(context.Background(), &onboardingpb.GetEmployeeRequest{Id: "x"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))

	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	listed, err := stream.Recv()
	require.NoError(t, err)
	require.NoError(t, stream.CloseSend())

	var services []string
	for _, svc := range listed.GetListServicesResponse().GetService() {
		services = append(services, svc.GetName())
	}
	assert.Contains(t, services, onboardingpb.OnboardingService_ServiceDesc.ServiceName)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("gRPC server did not stop")
	}
}
