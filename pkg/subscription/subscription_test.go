package subscription_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushfan/pkg/subscription"
	"github.com/dmitrymomot/pushfan/pkg/validator"
)

func candidate(endpoint string) subscription.Candidate {
	return subscription.Candidate{
		Endpoint: endpoint,
		Keys: subscription.Keys{
			Auth:   "tBHItJI5svbpez7KI4CCXg",
			P256dh: "BCVxsr7N_eNgVRqvHtD0zTZsEc6-VV-JvLexhqUzORcxaOzi6-AYWXvTBHm4bjyPjs7Vd8pZGH6SRpkNtoIAiw4",
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		in            subscription.Candidate
		wantErr       bool
		invalidFields []string
	}{
		{
			name: "valid",
			in:   candidate("https://fcm.googleapis.com/fcm/send/abc"),
		},
		{
			name:          "missing endpoint",
			in:            candidate(""),
			wantErr:       true,
			invalidFields: []string{"endpoint"},
		},
		{
			name: "missing auth",
			in: subscription.Candidate{
				Endpoint: "https://push.example.com/1",
				Keys:     subscription.Keys{P256dh: "key"},
			},
			wantErr:       true,
			invalidFields: []string{"keys.auth"},
		},
		{
			name: "whitespace p256dh",
			in: subscription.Candidate{
				Endpoint: "https://push.example.com/1",
				Keys:     subscription.Keys{Auth: "auth", P256dh: "  "},
			},
			wantErr:       true,
			invalidFields: []string{"keys.p256dh"},
		},
		{
			name:          "everything missing",
			in:            subscription.Candidate{},
			wantErr:       true,
			invalidFields: []string{"endpoint", "keys.auth", "keys.p256dh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sub, err := subscription.New(tt.in)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.in.Endpoint, sub.Endpoint)
				assert.Equal(t, tt.in.Keys.Auth, sub.Auth)
				assert.Equal(t, tt.in.Keys.P256dh, sub.P256dh)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, subscription.ErrInvalidSubscription)
			assert.Equal(t, subscription.Subscription{}, sub)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, tt.invalidFields, verrs.Fields())
		})
	}
}
