package native

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ceskydata/firemodel/internal/logging"
	"github.com/ceskydata/firemodel/pkg/wire"
)

//NewClient Builds an official SDK client from the shared connection config.
//With EmulatorHost set the client talks plaintext to the emulator and skips
//credentials entirely; otherwise CredentialsFile or the default credential
//chain applies. Construction only, no RPC happens here.
func NewClient(ctx context.Context, config *wire.Config) (*firestore.Client, error) {
	logger := logging.FromContext(ctx)

	var opts []option.ClientOption
	switch {
	case config.EmulatorHost != "":
		logger.Debugf("Using Firestore emulator at %v", config.EmulatorHost)
		opts = append(opts,
			option.WithEndpoint(config.EmulatorHost),
			option.WithoutAuthentication(),
			option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	case config.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}

	return firestore.NewClientWithDatabase(ctx, config.ProjectID, config.DatabaseID, opts...)
}

//DocRef Resolves a wire reference into a live document ref within client.
//Fails when the reference is malformed or its document path does not
//alternate collection and document ids, the one place where odd-length paths
//are rejected.
func DocRef(client *firestore.Client, ref wire.Reference) (*firestore.DocumentRef, error) {
	path, err := ref.Path()
	if err != nil {
		return nil, err
	}
	doc := client.Doc(path)
	if doc == nil {
		return nil, &wire.MalformedReferenceError{Ref: ref.Raw()}
	}
	return doc, nil
}
