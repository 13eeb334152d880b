package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"text-summarizer/internal/domain"
	"text-summarizer/internal/summarizer"
)

const sampleAIArticle = `
Artificial intelligence has revolutionized the way we interact with technology in the modern world.
Machine learning algorithms have become increasingly sophisticated, enabling computers to learn from
data and make predictions without being explicitly programmed. Deep learning, a subset of machine
learning, uses neural networks with multiple layers to process complex patterns in large datasets.
These technologies have found applications in various fields including healthcare, finance,
transportation, and entertainment. In healthcare, AI systems can analyze medical images to detect
diseases with remarkable accuracy, sometimes surpassing human experts. Financial institutions use
machine learning algorithms to detect fraudulent transactions and assess credit risk. Self-driving
cars rely on deep learning models to interpret sensor data and navigate safely through traffic.
Natural language processing, another branch of AI, has enabled virtual assistants like Siri and
Alexa to understand and respond to human speech. Despite these advances, AI still faces significant
challenges including bias in training data, lack of transparency in decision-making processes, and
concerns about privacy and security. Researchers are working on developing more ethical and
explainable AI systems that can be trusted in critical applications. The future of AI holds immense
potential for solving complex problems and improving human lives, but it also requires careful
consideration of its societal impacts. As AI continues to evolve, it is crucial that we develop
appropriate regulations and guidelines to ensure its responsible development and deployment.
Education and public awareness about AI technologies are essential for preparing society for an
AI-driven future. Collaboration between technologists, policymakers, ethicists, and the public
will be key to harnessing the benefits of AI while mitigating its risks.`

const sampleClimateArticle = `
Climate change represents one of the most pressing challenges facing humanity in the 21st century.
The Earth's average temperature has risen by approximately 1.1 degrees Celsius since the pre-industrial
era, primarily due to human activities that release greenhouse gases into the atmosphere. Carbon dioxide
emissions from burning fossil fuels for energy, transportation, and industrial processes are the main
contributors to global warming. Deforestation further exacerbates the problem by reducing the planet's
capacity to absorb carbon dioxide. The consequences of climate change are already visible around the world.
Extreme weather events such as hurricanes, droughts, and heatwaves have become more frequent and intense.
Rising sea levels threaten coastal communities and small island nations. Arctic ice is melting at an
alarming rate, endangering polar ecosystems and contributing to further warming. Changes in precipitation
patterns affect agriculture and water resources, potentially leading to food insecurity in vulnerable
regions. The scientific consensus is clear that immediate action is needed to limit global warming to
1.5 degrees Celsius above pre-industrial levels to avoid catastrophic consequences. Transitioning to
renewable energy sources such as solar, wind, and hydroelectric power is essential for reducing carbon
emissions. International cooperation through agreements like the Paris Climate Accord is necessary to
coordinate global efforts.`

// demoCmd runs the bundled sample articles through every method.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Summarize bundled sample articles with every method",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := summarizer.New()
		out := cmd.OutOrStdout()

		printHeader(out, "EXAMPLE 1: Artificial Intelligence Article")
		for _, method := range domain.Methods() {
			fmt.Fprintf(out, "\nMETHOD: %s\n%s\n", strings.ToUpper(string(method)), strings.Repeat("-", 80))
			summary, err := engine.Summarize(sampleAIArticle, 3, method)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n\n", summary)
			printStats(out, engine.Stats(sampleAIArticle, summary))
		}

		printHeader(out, "EXAMPLE 2: Climate Change Article")
		summary, err := engine.Summarize(sampleClimateArticle, 4, domain.MethodHybrid)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nMETHOD: HYBRID\n%s\n\n%s\n\n", strings.Repeat("-", 80), summary)
		printStats(out, engine.Stats(sampleClimateArticle, summary))
		return nil
	},
}

func printHeader(w io.Writer, title string) {
	sep := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n  %s\n%s\n", sep, title, sep)
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
