package web

import (
	"testing"

	"github.com/google/uuid"
)

func Test_compareRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     compareRequest
		wantErr bool
	}{
		{
			name: "two players",
			req: compareRequest{
				PlayerA: uuid.NameSpaceDNS,
				PlayerB: uuid.NameSpaceURL,
			},
			wantErr: false,
		},
		{
			name: "same player",
			req: compareRequest{
				PlayerA: uuid.NameSpaceDNS,
				PlayerB: uuid.NameSpaceDNS,
			},
			wantErr: true,
		},
		{
			name: "missing A",
			req: compareRequest{
				PlayerA: uuid.Nil,
				PlayerB: uuid.NameSpaceURL,
			},
			wantErr: true,
		},
		{
			name: "missing B",
			req: compareRequest{
				PlayerA: uuid.NameSpaceDNS,
				PlayerB: uuid.Nil,
			},
			wantErr: true,
		},
		{
			name: "missing both",
			req: compareRequest{
				PlayerA: uuid.Nil,
				PlayerB: uuid.Nil,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
