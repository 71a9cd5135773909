// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(familyFilesGuide)
	app.Add(namesFilesGuide)
	app.Add(paramsGuide)
	app.Add(projectsGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
PhyPan requires several files to read and process pangenome data. To reduce
the burden of keeping track of many files, a single project file is used to
hold the reference of all files required in the analysis. This guide explains
the structure of the file, but most of the time, the best way to edit or view
this file is by using phypan commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# phypan project files
	dataset	path
	families	gene-families.json
	names	names.json
	params	params.tab
	tree	species.nwk
	usernames	user-names.json

The valid file types are:

- Gene families. Defined by the dataset keyword "families". This file contains
  the gene families in JSON format. The recommended way to add a gene family
  file is by using the command 'phypan family add'.
- Bundled names. Defined by the dataset keyword "names". This file contains
  custom display names of the taxa, usually distributed with the data.
- Analysis parameters. Defined by the dataset keyword "params". This file
  contains the parameters used to detect taxa and classify gene families. The
  recommended way to set the parameters is by using the command
  'phypan param'.
- Parenthetical trees. Defined by the dataset keyword "tree". This file
  contains a phylogenetic tree in Newick format. The recommended way to add a
  tree is by using the command 'phypan tree add'.
- Hierarchical trees. Defined by the dataset keyword "treejson". This file
  contains a phylogenetic tree in JSON format. If both "tree" and "treejson"
  are defined, the parenthetical tree is used.
- User names. Defined by the dataset keyword "usernames". This file contains
  the display names defined by the user, that replace the bundled names. The
  recommended way to edit this file is by using the commands in
  'phypan names'.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
In PhyPan, the phylogenetic tree can be stored either as a parenthetical
(Newick) file, or as a hierarchical JSON file.

In a parenthetical file, branch lengths are optional, and internal nodes can
be named. Any text after the first semicolon is ignored. Here is an example:

	(GCA_000005845:0.1,(GCA_000009045:0.2,GCA_000012345:0.3):0.4);

In a JSON file, each node is an object with a "name", an optional "length",
and the list of descendant nodes in a "children" (or "branchset") field.
Here is an example:

	{
		"name": "",
		"children": [
			{"name": "GCA_000005845", "length": 0.1},
			{"name": "GCA_000009045", "length": 0.2}
		]
	}

The taxa of the tree are the nodes whose name starts with an accession
prefix (by default "GCA"), or all the terminals of the tree, depending on the
analysis parameters (see 'phypan help params').
	`,
}

var familyFilesGuide = &command.Command{
	Usage: "family-files",
	Short: "about gene family files",
	Long: `
In PhyPan, gene families are stored in a JSON file. The file is an object
keyed by the family identifier, in which each family is a list of genes. Each
gene is an object with the following fields:

	- genome-name  the name of the genome (the taxon) of the gene
	- locus-tag    the locus tag of the gene
	- product      the product of the gene

Here is an example file:

	{
		"group_1:dnaA": [
			{
				"genome-name": "GCA_000005845",
				"locus-tag": "b0001",
				"product": "chromosomal replication initiator"
			}
		]
	}

The diffusivity of a family is the number of different genomes in which the
family is found.
	`,
}

var paramsGuide = &command.Command{
	Usage: "params",
	Short: "about the analysis parameters file",
	Long: `
The analysis parameters are stored in a tab-delimited file with the following
fields:

	- parameter  the name of the parameter
	- value      the value of the parameter

Here is an example file:

	# phypan analysis parameters
	parameter	value
	core	0
	mode	prefix
	prefix	GCA,GCF
	singleton	1

The valid parameters are:

- core, the minimum diffusivity of a core gene family. If 0, the number of
  genomes in the gene family file is used.
- mode, the strategy used to detect the taxa in a tree. Either "prefix" (any
  node whose name starts with an accession prefix) or "leaf" (any terminal).
- prefix, a comma-separated list of accession prefixes.
- singleton, the maximum diffusivity of a singleton gene family.

If the project does not define a parameters file, the default values can be
set with the environment variables PHYPAN_CORE, PHYPAN_MODE, PHYPAN_PREFIX,
and PHYPAN_SINGLETON, that can be defined in a .env file in the working
directory.
	`,
}

var namesFilesGuide = &command.Command{
	Usage: "names-files",
	Short: "about custom names files",
	Long: `
Custom names replace the canonical name of a taxon (its name in the tree)
with a display name. By default, the display name of a taxon is its canonical
name with the underscores replaced by spaces.

A custom names file is a JSON object keyed by the canonical name. Here is an
example file:

	{
	  "GCA_000005845": "Escherichia coli K-12",
	  "GCA_000009045": "Bacillus subtilis 168"
	}

Names can also be imported from a comma-delimited file without header, in
which the first column is the canonical name, and the second column the
display name.

The names defined by the user (dataset "usernames") always replace the names
bundled with the data (dataset "names").
	`,
}
