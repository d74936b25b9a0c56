package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/adsclient/internal/apis/dfa"
	"github.com/custodia-labs/adsclient/internal/apis/dfa/v111"
	"github.com/custodia-labs/adsclient/internal/apis/dfa/v112"
	"github.com/custodia-labs/adsclient/internal/core/domain"
	"github.com/custodia-labs/adsclient/internal/core/services"
)

var (
	dfaLoginVersion string
	dfaShowToken    bool
	dfaUsersVersion string
	dfaSearch       string
	dfaPageSize     int
	dfaReportID     int64
)

var dfaCmd = &cobra.Command{
	Use:   "dfa",
	Short: "Run DFA API examples",
}

var dfaLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print the user token",
	Long: `Log in with the configured user name and password and print the token.

If no password or auth token is configured you are prompted for the password.`,
	RunE: runDfaLogin,
}

var dfaUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users matching a search string",
	RunE:  runDfaUsers,
}

var dfaActivityTypesCmd = &cobra.Command{
	Use:   "activity-types",
	Short: "List spotlight activity types",
	RunE:  runDfaActivityTypes,
}

var dfaReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the status of a report",
	RunE:  runDfaReport,
}

func init() {
	dfaLoginCmd.Flags().StringVar(&dfaLoginVersion, "api-version", dfa.LatestVersion, "DFA API version")
	dfaLoginCmd.Flags().BoolVar(&dfaShowToken, "show-token", false, "print the full token")
	dfaUsersCmd.Flags().StringVar(&dfaSearch, "search", "", "search string matched against user names")
	dfaUsersCmd.Flags().IntVar(&dfaPageSize, "page-size", 10, "maximum number of users")
	dfaUsersCmd.Flags().StringVar(&dfaUsersVersion, "api-version", v111.Version, "DFA API version (v1.11 or v1.12)")
	dfaReportCmd.Flags().Int64Var(&dfaReportID, "id", 0, "report ID")
	_ = dfaReportCmd.MarkFlagRequired("id")

	dfaCmd.AddCommand(dfaLoginCmd)
	dfaCmd.AddCommand(dfaUsersCmd)
	dfaCmd.AddCommand(dfaActivityTypesCmd)
	dfaCmd.AddCommand(dfaReportCmd)
	rootCmd.AddCommand(dfaCmd)
}

// dfaSession returns the factory with a password in its headers and the
// user reference to create services for.
func dfaSession(cmd *cobra.Command) (*services.DfaServiceFactory, *domain.User, error) {
	f, err := getDfaFactory()
	if err != nil {
		return nil, nil, err
	}

	headers := f.Headers()
	if headers.Value(domain.HeaderAuthToken) == "" && headers.Value(domain.HeaderPassword) == "" {
		cmd.Printf("Password for %s: ", headers.Value(domain.HeaderUserName))
		headers[domain.HeaderPassword] = passwordReader()
		cmd.Println()
		f.SetHeaders(headers)
	}

	return f, services.NewUser(f.Config().UserName), nil
}

func runDfaLogin(cmd *cobra.Command, _ []string) error {
	f, user, err := dfaSession(cmd)
	if err != nil {
		return err
	}

	sig := domain.NewDfaServiceSignature(dfaLoginVersion, domain.LoginServiceName)
	token, err := f.GetAuthenticationToken(cmd.Context(), sig, user, "")
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	shown := maskSecret(token.Token)
	if dfaShowToken {
		shown = token.Token
	}
	cmd.Printf("Logged in as %s. Token: %s\n", token.UserName, shown)
	return nil
}

func runDfaUsers(cmd *cobra.Command, _ []string) error {
	f, user, err := dfaSession(cmd)
	if err != nil {
		return err
	}

	cmd.Printf("This example displays user name, ID, network ID, subnetwork ID and user group ID "+
		"for the given search criteria. Results are limited to the first %d records.\n", dfaPageSize)

	switch dfaUsersVersion {
	case v111.Version:
		err = listUsersV111(cmd, f, user)
	case v112.Version:
		err = listUsersV112(cmd, f, user)
	default:
		return fmt.Errorf("%w: unsupported DFA version %q", domain.ErrInvalidInput, dfaUsersVersion)
	}
	if err != nil {
		cmd.Printf("Failed to retrieve users. Error says \"%s\"\n", err)
	}
	return nil
}

func listUsersV111(cmd *cobra.Command, f *services.DfaServiceFactory, user *domain.User) error {
	svc, err := services.GetService[*v111.UserRemoteService](cmd.Context(), f, v111.UserRemoteServiceSignature, user)
	if err != nil {
		return err
	}
	set, err := svc.GetUsersByCriteria(cmd.Context(), v111.UserSearchCriteria{PageSize: dfaPageSize, SearchString: dfaSearch})
	if err != nil {
		return err
	}
	if len(set.Records) == 0 {
		cmd.Println("No users found for your search criteria.")
		return nil
	}
	for _, u := range set.Records {
		printUser(cmd, u.Name, u.ID, u.NetworkID, u.SubnetworkID, u.UserGroupID)
	}
	return nil
}

func listUsersV112(cmd *cobra.Command, f *services.DfaServiceFactory, user *domain.User) error {
	svc, err := services.GetService[*v112.UserRemoteService](cmd.Context(), f, v112.UserRemoteServiceSignature, user)
	if err != nil {
		return err
	}
	set, err := svc.GetUsersByCriteria(cmd.Context(), v112.UserSearchCriteria{PageSize: dfaPageSize, SearchString: dfaSearch})
	if err != nil {
		return err
	}
	if len(set.Records) == 0 {
		cmd.Println("No users found for your search criteria.")
		return nil
	}
	for _, u := range set.Records {
		printUser(cmd, u.Name, u.ID, u.NetworkID, u.SubnetworkID, u.UserGroupID)
	}
	return nil
}

func printUser(cmd *cobra.Command, name string, id, networkID, subnetworkID, groupID int64) {
	cmd.Printf("User with name \"%s\", ID \"%d\", network ID \"%d\", subnetwork ID \"%d\", "+
		"and user group ID \"%d\" was found.\n", name, id, networkID, subnetworkID, groupID)
}

func runDfaActivityTypes(cmd *cobra.Command, _ []string) error {
	f, user, err := dfaSession(cmd)
	if err != nil {
		return err
	}

	cmd.Println("This example displays activity type names and IDs.")

	svc, err := services.GetService[*v112.SpotlightRemoteService](cmd.Context(), f, v112.SpotlightRemoteServiceSignature, user)
	if err == nil {
		var types []v112.SpotlightActivityType
		types, err = svc.GetSpotlightActivityTypes(cmd.Context())
		for _, t := range types {
			cmd.Printf("Activity type with name \"%s\" and ID \"%d\" was found.\n", t.Name, t.ID)
		}
	}
	if err != nil {
		cmd.Printf("Failed to retrieve activity types. Error says \"%s\"\n", err)
	}
	return nil
}

func runDfaReport(cmd *cobra.Command, _ []string) error {
	f, user, err := dfaSession(cmd)
	if err != nil {
		return err
	}

	cmd.Println("This example displays the status of a report.")

	svc, err := services.GetService[*v112.ReportRemoteService](cmd.Context(), f, v112.ReportRemoteServiceSignature, user)
	if err == nil {
		var info *v112.ReportInfo
		info, err = svc.GetReport(cmd.Context(), v112.ReportRequest{ReportID: dfaReportID})
		if err == nil {
			cmd.Printf("Report with ID \"%d\" and name \"%s\" has status \"%s\".\n", info.ReportID, info.Name, info.Status.Name)
			if info.URL != "" {
				cmd.Printf("Download URL: %s\n", info.URL)
			}
		}
	}
	if err != nil {
		cmd.Printf("Failed to retrieve report. Error says \"%s\"\n", err)
	}
	return nil
}
