package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/netops/internal/client/models"
)

// render prints the status line whenever the auth phase changes and the
// profile text whenever it changes, until states is closed.
func render(states <-chan models.UiState, w io.Writer) {
	var (
		first       = true
		lastPhase   models.AuthPhase
		lastProfile string
	)
	for st := range states {
		if first || st.AuthState != lastPhase {
			fmt.Fprintf(w, "\n[status] %s\n", st.AuthState.Display())
			lastPhase = st.AuthState
		}
		if st.ProfileInfo != lastProfile {
			if st.ProfileInfo != "" {
				fmt.Fprintf(w, "[profile]\n%s", st.ProfileInfo)
			}
			lastProfile = st.ProfileInfo
		}
		first = false
	}
}
