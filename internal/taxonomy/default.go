package taxonomy

// DefaultVersion labels the built-in outline.
const DefaultVersion = "2024"

// defaultDomains is the canonical exam content outline: 27 tasks, People
// T1-T10, Process T11-T23, Business T24-T27.
var defaultDomains = []Domain{
	{
		Key:              People,
		Name:             "People",
		TargetPercentage: 0.42,
		Tasks: []Task{
			{
				ID:          "T1",
				Title:       "Manage conflict",
				Description: "Interpret the source and stage of a conflict and recommend an appropriate resolution.",
				Enablers: []string{
					"Interpret the source and stage of the conflict",
					"Analyze the context for the conflict",
					"Evaluate, recommend, and reconcile the appropriate conflict resolution solution",
				},
			},
			{
				ID:          "T2",
				Title:       "Lead a team",
				Description: "Set a clear vision and mission and support a diverse team through servant leadership.",
				Enablers: []string{
					"Set a clear vision and mission",
					"Support diversity and inclusion",
					"Value servant leadership",
					"Determine an appropriate leadership style",
				},
			},
			{
				ID:          "T3",
				Title:       "Support team performance",
				Description: "Appraise team member performance against key performance indicators and provide feedback.",
				Enablers: []string{
					"Appraise team member performance against key performance indicators",
					"Support and recognize team member growth and development",
					"Determine appropriate feedback approach",
					"Verify performance improvements",
				},
			},
			{
				ID:          "T4",
				Title:       "Empower team members and stakeholders",
				Description: "Organize around team strengths and support accountability and decision-making authority.",
				Enablers: []string{
					"Organize around team strengths",
					"Support team task accountability",
					"Evaluate demonstration of task accountability",
					"Determine and bestow level(s) of decision-making authority",
				},
			},
			{
				ID:          "T5",
				Title:       "Ensure team members and stakeholders are adequately trained",
				Description: "Determine required competencies and training options, and measure training outcomes.",
				Enablers: []string{
					"Determine required competencies and elements of training",
					"Determine training options based on training needs",
					"Allocate resources for training",
					"Measure training outcomes",
				},
			},
			{
				ID:          "T6",
				Title:       "Build a team",
				Description: "Appraise stakeholder skills, deduce project resource requirements, and continuously assess team skills.",
				Enablers: []string{
					"Appraise stakeholder skills",
					"Deduce project resource requirements",
					"Continuously assess and refresh team skills to meet project needs",
					"Maintain team and knowledge transfer",
				},
			},
			{
				ID:          "T7",
				Title:       "Address and remove impediments, obstacles, and blockers for the team",
				Description: "Determine and prioritize critical impediments, obstacles, and blockers and remove them.",
				Enablers: []string{
					"Determine critical impediments, obstacles, and blockers for the team",
					"Prioritize critical impediments, obstacles, and blockers for the team",
					"Use network to implement solutions to remove impediments, obstacles, and blockers",
					"Re-assess continually to ensure impediments, obstacles, and blockers are being addressed",
				},
			},
			{
				ID:          "T8",
				Title:       "Negotiate project agreements",
				Description: "Analyze the bounds of the negotiations and determine a negotiation strategy.",
				Enablers: []string{
					"Analyze the bounds of the negotiations for agreement",
					"Assess priorities and determine ultimate objective(s)",
					"Verify objective(s) of the project agreement is met",
					"Participate in agreement negotiations",
					"Determine a negotiation strategy",
				},
			},
			{
				ID:          "T9",
				Title:       "Collaborate with stakeholders",
				Description: "Evaluate engagement needs for stakeholders and align stakeholder needs, expectations, and project objectives.",
				Enablers: []string{
					"Evaluate engagement needs for stakeholders",
					"Optimize alignment between stakeholder needs, expectations, and project objectives",
					"Build trust and influence stakeholders to accomplish project objectives",
				},
			},
			{
				ID:          "T10",
				Title:       "Promote team performance through emotional intelligence",
				Description: "Assess behavior through personality indicators and adjust to the emotional needs of key stakeholders, including virtual teams.",
				Enablers: []string{
					"Assess behavior through the use of personality indicators",
					"Analyze personality indicators and adjust to the emotional needs of key project stakeholders",
					"Examine virtual team member needs",
					"Continually evaluate effectiveness of virtual team member engagement",
				},
			},
		},
	},
	{
		Key:              Process,
		Name:             "Process",
		TargetPercentage: 0.50,
		Tasks: []Task{
			{
				ID:          "T11",
				Title:       "Execute project with the urgency required to deliver business value",
				Description: "Assess opportunities to deliver value incrementally and support the team in subdividing project tasks.",
				Enablers: []string{
					"Assess opportunities to deliver value incrementally",
					"Examine the business value throughout the project",
					"Support the team to subdivide project tasks as necessary to find the minimum viable product",
				},
			},
			{
				ID:          "T12",
				Title:       "Manage communications",
				Description: "Analyze the communication needs of all stakeholders and determine methods, channels, and frequency.",
				Enablers: []string{
					"Analyze communication needs of all stakeholders",
					"Determine communication methods, channels, frequency, and level of detail for all stakeholders",
					"Communicate project information and updates effectively",
					"Confirm communication is understood and feedback is received",
				},
			},
			{
				ID:          "T13",
				Title:       "Assess and manage risks",
				Description: "Determine risk management options and iteratively assess and prioritize risks.",
				Enablers: []string{
					"Determine risk management options",
					"Iteratively assess and prioritize risks",
				},
			},
			{
				ID:          "T14",
				Title:       "Engage stakeholders",
				Description: "Analyze stakeholders, categorize them, and develop, execute, and validate a stakeholder engagement strategy.",
				Enablers: []string{
					"Analyze stakeholders (e.g., power interest grid, influence, impact)",
					"Categorize stakeholders",
					"Engage stakeholders by category",
					"Develop, execute, and validate a strategy for stakeholder engagement",
				},
			},
			{
				ID:          "T15",
				Title:       "Plan and manage budget and resources",
				Description: "Estimate budgetary needs, anticipate future budget challenges, and monitor budget variations.",
				Enablers: []string{
					"Estimate budgetary needs based on the scope of the project and lessons learned from past projects",
					"Anticipate future budget challenges",
					"Monitor budget variations and work with governance process to adjust as necessary",
					"Plan and manage resources",
				},
			},
			{
				ID:          "T16",
				Title:       "Plan and manage schedule",
				Description: "Estimate project tasks, utilize benchmarks and historical data, and prepare the schedule based on methodology.",
				Enablers: []string{
					"Estimate project tasks (milestones, dependencies, story points)",
					"Utilize benchmarks and historical data",
					"Prepare schedule based on methodology",
					"Measure ongoing progress based on methodology",
					"Modify schedule, as needed, based on methodology",
					"Coordinate with other projects and other operations",
				},
			},
			{
				ID:          "T17",
				Title:       "Plan and manage quality of products/deliverables",
				Description: "Determine the quality standard required for project deliverables and recommend improvement options.",
				Enablers: []string{
					"Determine quality standard required for project deliverables",
					"Recommend options for improvement based on quality gaps",
					"Continually survey project deliverable quality",
				},
			},
			{
				ID:          "T18",
				Title:       "Plan and manage scope",
				Description: "Determine and prioritize requirements, break down scope, and monitor and validate scope.",
				Enablers: []string{
					"Determine and prioritize requirements",
					"Break down scope (e.g., WBS, backlog)",
					"Monitor and validate scope",
				},
			},
			{
				ID:          "T19",
				Title:       "Integrate project planning activities",
				Description: "Consolidate the project and phase plans and assess them for dependencies, gaps, and continued business value.",
				Enablers: []string{
					"Consolidate the project/phase plans",
					"Assess consolidated project plans for dependencies, gaps, and continued business value",
					"Analyze the data collected",
					"Collect and analyze data to make informed project decisions",
					"Determine critical information requirements",
				},
			},
			{
				ID:          "T20",
				Title:       "Manage project changes",
				Description: "Anticipate and embrace the need for change and determine a strategy to handle change.",
				Enablers: []string{
					"Anticipate and embrace the need for change",
					"Determine strategy to handle change",
					"Execute change management strategy according to the methodology",
					"Determine a change response to move the project forward",
				},
			},
			{
				ID:          "T21",
				Title:       "Plan and manage procurement",
				Description: "Define resource requirements and needs, communicate them, and manage suppliers and contracts.",
				Enablers: []string{
					"Define resource requirements and needs",
					"Communicate resource requirements",
					"Manage suppliers/contracts",
					"Plan and manage procurement strategy",
					"Develop a delivery solution",
				},
			},
			{
				ID:          "T22",
				Title:       "Manage project artifacts",
				Description: "Determine the requirements for managing project artifacts and keep project information current and accessible.",
				Enablers: []string{
					"Determine the requirements (what, when, where, who, etc.) for managing the project artifacts",
					"Validate that the project information is kept up to date and accessible to all stakeholders",
					"Continually assess the effectiveness of the management of the project artifacts",
				},
			},
			{
				ID:          "T23",
				Title:       "Determine appropriate project methodology/methods and practices",
				Description: "Assess project needs, complexity, and magnitude and recommend a project execution strategy and methodology.",
				Enablers: []string{
					"Assess project needs, complexity, and magnitude",
					"Recommend project execution strategy (e.g., contracting, finance)",
					"Recommend a project methodology/approach (i.e., predictive, agile, hybrid)",
					"Use iterative, incremental practices throughout the project life cycle",
				},
			},
		},
	},
	{
		Key:              Business,
		Name:             "Business Environment",
		TargetPercentage: 0.08,
		Tasks: []Task{
			{
				ID:          "T24",
				Title:       "Plan and manage project compliance",
				Description: "Confirm project compliance requirements, classify compliance categories, and address threats to compliance.",
				Enablers: []string{
					"Confirm project compliance requirements (e.g., security, health and safety, regulatory compliance)",
					"Classify compliance categories",
					"Determine potential threats to compliance",
					"Use methods to support compliance",
					"Analyze the consequences of noncompliance",
					"Determine necessary approach and action to address compliance needs",
					"Measure the extent to which the project is in compliance",
				},
			},
			{
				ID:          "T25",
				Title:       "Evaluate and deliver project benefits and value",
				Description: "Investigate that benefits are identified, document ownership for ongoing realization, and verify measurement systems.",
				Enablers: []string{
					"Investigate that benefits are identified",
					"Document agreement on ownership for ongoing benefit realization",
					"Verify measurement system is in place to track benefits",
					"Evaluate delivery options to demonstrate value",
					"Appraise stakeholders of value gain progress",
				},
			},
			{
				ID:          "T26",
				Title:       "Evaluate and address external business environment changes for impact on scope",
				Description: "Survey changes to the external business environment, assess their impact, and recommend scope options.",
				Enablers: []string{
					"Survey changes to external business environment (e.g., regulations, technology, geopolitical, market)",
					"Assess and prioritize impact on project scope/backlog based on changes in external business environment",
					"Recommend options for scope/backlog changes (e.g., schedule, cost changes)",
					"Continually review external business environment for impacts on project scope/backlog",
				},
			},
			{
				ID:          "T27",
				Title:       "Support organizational change",
				Description: "Assess organizational culture, evaluate the impact of organizational change on the project, and the impact of the project on the organization.",
				Enablers: []string{
					"Assess organizational culture",
					"Evaluate impact of organizational change to project and determine required actions",
					"Evaluate impact of the project to the organization and determine required actions",
				},
			},
		},
	},
}

// Default returns the built-in outline. It panics only if the built-in data
// is malformed, which the package tests rule out.
func Default() *Taxonomy {
	t, err := New(DefaultVersion, defaultDomains)
	if err != nil {
		panic("taxonomy: built-in outline is invalid: " + err.Error())
	}
	return t
}
