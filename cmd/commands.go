package cmd

import (
	"github.com/google/subcommands"
)

// Commands is the full set of tally subcommands, in the order they are
// registered and listed in help.
var Commands = []subcommands.Command{
	&companyAddCmd{},
	&companyListCmd{},
	&companySwitchCmd{},
	&companyDeleteCmd{},

	&employeeAddCmd{},
	&employeeListCmd{},
	&employeeDeleteCmd{},
	&leaveCmd{},
	&dutyCmd{},
	&advanceCmd{},
	&payCmd{},
	&balanceCmd{},
	&slipCmd{},

	&clientAddCmd{},
	&clientListCmd{},
	&contactAddCmd{},
	&projectAddCmd{},
	&projectPayCmd{},
	&statementCmd{},

	&expenseAddCmd{},
	&expenseListCmd{},
	&expenseApproveCmd{},
	&expenseReimburseCmd{},
	&expenseImportCmd{},

	&reportAddCmd{},
	&reportShowCmd{},
	&reportAmendCmd{},
	&reportApproveCmd{},
	&reportReimburseCmd{},

	&accountCmd{},
	&txCmd{},
	&reimburseCmd{},

	&topicCmd{},
	&assistCmd{},
}
